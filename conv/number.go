package conv

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/xconv/format/text"
)

func newIntegerConverter(target reflect.Type) Converter {
	return newTemplate(target, toInteger)
}

func newFloatConverter(target reflect.Type) Converter {
	return newTemplate(target, toFloat)
}

// toInteger converts value to signed or unsigned integer of target kind, wider values are narrowed with wrap around
func toInteger(value interface{}, target reflect.Type) (interface{}, error) {
	if isBlankText(value) {
		return nil, nil
	}
	result := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := asUint64(value)
		if err != nil {
			return nil, conversionError(value, target, err)
		}
		result.SetUint(u)
	default:
		i, err := asInt64(value)
		if err != nil {
			return nil, conversionError(value, target, err)
		}
		result.SetInt(i)
	}
	return result.Interface(), nil
}

func toFloat(value interface{}, target reflect.Type) (interface{}, error) {
	if isBlankText(value) {
		return nil, nil
	}
	f, err := asFloat64(value)
	if err != nil {
		return nil, conversionError(value, target, err)
	}
	result := reflect.New(target).Elem()
	result.SetFloat(f)
	return result.Interface(), nil
}

func asInt64(value interface{}) (int64, error) {
	switch actual := value.(type) {
	case time.Time:
		return actual.UnixMilli(), nil
	case *big.Int:
		return actual.Int64(), nil
	case big.Int:
		return actual.Int64(), nil
	case decimal.Decimal:
		return actual.IntPart(), nil
	case []byte:
		return parseInt(string(actual))
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool:
		if rValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(rValue.Float()), nil
	case reflect.String:
		return parseInt(rValue.String())
	}
	return 0, fmt.Errorf("unsupported number source %T", value)
}

func asUint64(value interface{}) (uint64, error) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rValue.Uint(), nil
	case reflect.Float32, reflect.Float64:
		if f := rValue.Float(); f >= 0 {
			return uint64(f), nil
		}
	}
	switch actual := value.(type) {
	case *big.Int:
		if actual.Sign() >= 0 {
			return actual.Uint64(), nil
		}
	case big.Int:
		if actual.Sign() >= 0 {
			return actual.Uint64(), nil
		}
	}
	i, err := asInt64(value)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("negative value %v", i)
	}
	return uint64(i), nil
}

func asFloat64(value interface{}) (float64, error) {
	switch actual := value.(type) {
	case time.Time:
		return float64(actual.UnixMilli()), nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(actual).Float64()
		return f, nil
	case big.Int:
		f, _ := new(big.Float).SetInt(&actual).Float64()
		return f, nil
	case decimal.Decimal:
		f, _ := actual.Float64()
		return f, nil
	case []byte:
		return parseFloat(string(actual))
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool:
		if rValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rValue.Float(), nil
	case reflect.String:
		return parseFloat(rValue.String())
	}
	return 0, fmt.Errorf("unsupported number source %T", value)
}

// isBlankText returns true for blank string or byte slice values
func isBlankText(value interface{}) bool {
	switch actual := value.(type) {
	case []byte:
		return text.IsBlank(string(actual))
	}
	if rValue := reflect.ValueOf(value); rValue.Kind() == reflect.String {
		return text.IsBlank(rValue.String())
	}
	return false
}

// numberText strips whitespace and grouping separators
func numberText(value string) string {
	value = strings.TrimSpace(value)
	if strings.ContainsAny(value, ",_") {
		value = strings.NewReplacer(",", "", "_", "").Replace(value)
	}
	return value
}

func parseInt(value string) (int64, error) {
	literal := numberText(value)
	if literal == "" {
		return 0, fmt.Errorf("empty number")
	}
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return i, nil
	}
	if len(literal) > 2 && literal[0] == '0' && (literal[1] == 'x' || literal[1] == 'X') {
		return strconv.ParseInt(literal, 0, 64)
	}
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return 0, err
	}
	return d.IntPart(), nil
}

func parseFloat(value string) (float64, error) {
	literal := numberText(value)
	if literal == "" {
		return 0, fmt.Errorf("empty number")
	}
	return strconv.ParseFloat(literal, 64)
}
