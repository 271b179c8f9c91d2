package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrNotAllowed is returned when no enabled category covers a conversion.
var ErrNotAllowed = errors.New("conversion not allowed")

type convertFunc func(src reflect.Value, dst reflect.Type) (reflect.Value, error)

var converters map[ConversionPair]convertFunc

var isValidType = reflect.TypeFor[interface{ IsValid() bool }]()

func init() {
	converters = map[ConversionPair]convertFunc{}

	for from := KindEnum(1); int(from) < KindTotal; from++ {
		for to := KindEnum(1); int(to) < KindTotal; to++ {
			if fn := pairConverter(from, to); fn != nil {
				converters[ConversionPair{from, to}] = fn
			}
		}
	}
}

// Convert converts src to dst using the conversions enabled by allowed.
// Named primitive types (KindPrimitiveEnum) convert through their
// underlying kind, which may also enable the conversion, and are checked
// with IsValid when they provide it.
func Convert(src reflect.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	srcKind := FromReflectType(src.Type())
	dstKind := FromReflectType(dst)

	if srcKind == 0 || dstKind == 0 ||
		!Allowed(ConversionPair{srcKind, dstKind}, allowed) &&
			!Allowed(ConversionPair{Underlying(src.Type()), Underlying(dst)}, allowed) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, src.Type(), dst)
	}

	if srcKind != KindPrimitiveEnum && dstKind != KindPrimitiveEnum {
		return converters[ConversionPair{srcKind, dstKind}](src, dst)
	}

	return convertEnum(src, dst)
}

func convertEnum(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	from := Underlying(src.Type())
	to := Underlying(dst)

	var (
		out reflect.Value
		err error
	)

	if from == to {
		out = src.Convert(dst)
	} else {
		fn, ok := converters[ConversionPair{from, to}]
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, src.Type(), dst)
		}

		out, err = fn(src, dst)
		if err != nil {
			return reflect.Value{}, err
		}
	}

	if dst.Implements(isValidType) && !out.Interface().(interface{ IsValid() bool }).IsValid() {
		return reflect.Value{}, fmt.Errorf("%v is not a valid value for %s", src.Interface(), dst)
	}

	return out, nil
}

//nolint:gocyclo // one case per conversion family
func pairConverter(from, to KindEnum) convertFunc {
	switch {
	case from.IsNumber() && to.IsNumber():
		return convertNumber
	case from == KindString && to.IsNumber():
		return parseNumber(to)
	case from.IsNumber() && to == KindString:
		return formatNumber(from)
	case from.IsInteger() && to == KindBool:
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			n, err := integerValue(src)
			if err != nil {
				return reflect.Value{}, err
			}

			out := reflect.New(dst).Elem()

			switch n {
			case 0:
				out.SetBool(false)
			case 1:
				out.SetBool(true)
			default:
				return reflect.Value{}, fmt.Errorf("only numbers 0 and 1 are allowed for bool, got: %d", n)
			}

			return out, nil
		}
	case from == KindBool && to.IsInteger():
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			n := int64(0)
			if src.Bool() {
				n = 1
			}

			return reflect.ValueOf(n).Convert(dst), nil
		}
	case from == KindString && to == KindBool:
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			out := reflect.New(dst).Elem()

			switch strings.ToLower(strings.TrimSpace(src.String())) {
			default:
				return reflect.Value{}, fmt.Errorf("only strings true/false, yes/no, on/off are allowed for bool, got: %s", src.String())
			case "true", "yes", "on":
				out.SetBool(true)
			case "false", "no", "off":
				out.SetBool(false)
			}

			return out, nil
		}
	case from == KindBool && to == KindString:
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			out := reflect.New(dst).Elem()
			out.SetString(strconv.FormatBool(src.Bool()))

			return out, nil
		}
	case from == KindString && to == KindTime:
		return func(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
			t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(src.String()))
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(t), nil
		}
	case from == KindTime && to == KindString:
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			out := reflect.New(dst).Elem()
			out.SetString(src.Interface().(time.Time).Format(time.RFC3339Nano))

			return out, nil
		}
	case from.IsInteger() && to == KindTime:
		return func(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
			n, err := integerValue(src)
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(time.Unix(n, 0)), nil
		}
	case from == KindTime && to.IsInteger():
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			return convertNumber(reflect.ValueOf(src.Interface().(time.Time).Unix()), dst)
		}
	case from == KindString && to == KindDuration:
		return func(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
			d, err := time.ParseDuration(strings.TrimSpace(src.String()))
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(d), nil
		}
	case from == KindDuration && to == KindString:
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			out := reflect.New(dst).Elem()
			out.SetString(time.Duration(src.Int()).String())

			return out, nil
		}
	case from.IsInteger() && to == KindDuration:
		return func(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
			n, err := integerValue(src)
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(time.Duration(n)), nil
		}
	case from == KindDuration && to.IsInteger():
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			return convertNumber(reflect.ValueOf(src.Int()), dst)
		}
	case from.IsFloat() && to == KindDuration:
		return func(src reflect.Value, _ reflect.Type) (reflect.Value, error) {
			return reflect.ValueOf(time.Duration(src.Float() * float64(time.Second))), nil
		}
	case from == KindDuration && to.IsFloat():
		return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
			return reflect.ValueOf(time.Duration(src.Int()).Seconds()).Convert(dst), nil
		}
	}

	return nil
}

func parseNumber(to KindEnum) convertFunc {
	return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		s := strings.TrimSpace(src.String())
		out := reflect.New(dst).Elem()

		switch {
		case to.IsSigned():
			n, err := strconv.ParseInt(s, 10, to.Bits())
			if err != nil {
				return reflect.Value{}, err
			}

			out.SetInt(n)
		case to.IsUnsigned():
			n, err := strconv.ParseUint(s, 10, to.Bits())
			if err != nil {
				return reflect.Value{}, err
			}

			out.SetUint(n)
		default:
			f, err := strconv.ParseFloat(s, to.Bits())
			if err != nil {
				return reflect.Value{}, err
			}

			out.SetFloat(f)
		}

		return out, nil
	}
}

func formatNumber(from KindEnum) convertFunc {
	return func(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
		out := reflect.New(dst).Elem()

		switch {
		case from.IsSigned():
			out.SetString(strconv.FormatInt(src.Int(), 10))
		case from.IsUnsigned():
			out.SetString(strconv.FormatUint(src.Uint(), 10))
		default:
			out.SetString(strconv.FormatFloat(src.Float(), 'f', -1, from.Bits()))
		}

		return out, nil
	}
}

// convertNumber converts between numeric kinds. It fails instead of
// wrapping, truncating or rounding when the value does not fit dst.
func convertNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	out := reflect.New(dst).Elem()

	switch {
	case out.CanInt():
		n, err := signedValue(src)
		if err != nil {
			return reflect.Value{}, err
		}

		if out.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("value %v overflows %s", src.Interface(), dst)
		}

		out.SetInt(n)
	case out.CanUint():
		u, err := unsignedValue(src)
		if err != nil {
			return reflect.Value{}, err
		}

		if out.OverflowUint(u) {
			return reflect.Value{}, fmt.Errorf("value %v overflows %s", src.Interface(), dst)
		}

		out.SetUint(u)
	default:
		f := floatValue(src)
		if out.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("value %v overflows %s", src.Interface(), dst)
		}

		out.SetFloat(f)
	}

	return out, nil
}

func signedValue(v reflect.Value) (int64, error) {
	if v.CanInt() || v.CanUint() {
		return integerValue(v)
	}

	f, err := wholeFloat(v.Float())
	if err != nil {
		return 0, err
	}

	if f < math.MinInt64 || f >= 1<<63 {
		return 0, fmt.Errorf("value %v overflows int64", f)
	}

	return int64(f), nil
}

func unsignedValue(v reflect.Value) (uint64, error) {
	switch {
	case v.CanUint():
		return v.Uint(), nil
	case v.CanInt():
		if v.Int() < 0 {
			return 0, fmt.Errorf("negative value %d for an unsigned type", v.Int())
		}

		return uint64(v.Int()), nil
	}

	f, err := wholeFloat(v.Float())
	if err != nil {
		return 0, err
	}

	if f < 0 || f >= 1<<64 {
		return 0, fmt.Errorf("value %v overflows uint64", f)
	}

	return uint64(f), nil
}

// wholeFloat rejects NaN, infinities and values with a fractional part.
func wholeFloat(f float64) (float64, error) {
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("value %v is not a whole number", f)
	}

	return f, nil
}

func floatValue(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// integerValue reads any integer value as int64.
func integerValue(v reflect.Value) (int64, error) {
	if v.CanInt() {
		return v.Int(), nil
	}

	u := v.Uint()
	if u > 1<<63-1 {
		return 0, fmt.Errorf("value %d overflows int64", u)
	}

	return int64(u), nil
}
