package properties

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Source resolves a property name to its value.
type Source interface {
	Lookup(key string) (string, bool)
}

// Map is a Source backed by a plain map.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]

	return v, ok
}

// Chain asks each source in order; the first hit wins.
type Chain []Source

// Lookup implements Source.
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}

		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}

	return "", false
}

// Env looks properties up in the process environment. The key is
// upper-cased, '.' and '-' become '_', and Prefix is prepended:
// with Prefix "APP_" the key "company.name" reads APP_COMPANY_NAME.
type Env struct {
	Prefix string
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// Lookup implements Source.
func (e Env) Lookup(key string) (string, bool) {
	return os.LookupEnv(e.Prefix + strings.ToUpper(envReplacer.Replace(key)))
}

// Viper adapts a viper instance so its merged configuration (files, env,
// flags) can back placeholders.
type Viper struct {
	V *viper.Viper
}

// Lookup implements Source.
func (v Viper) Lookup(key string) (string, bool) {
	if v.V == nil || !v.V.IsSet(key) {
		return "", false
	}

	return v.V.GetString(key), true
}
