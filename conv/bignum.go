package conv

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

func newBigIntConverter(target reflect.Type) Converter {
	return newTemplate(target, toBigInt)
}

func newDecimalConverter(target reflect.Type) Converter {
	return newTemplate(target, toDecimal)
}

func toBigInt(value interface{}, target reflect.Type) (interface{}, error) {
	switch actual := value.(type) {
	case big.Int:
		return new(big.Int).Set(&actual), nil
	case decimal.Decimal:
		return actual.BigInt(), nil
	case float32, float64:
		f, _ := asFloat64(actual)
		return decimal.NewFromFloat(f).BigInt(), nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, _ := asInt64(value)
		return big.NewInt(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rValue.Uint()), nil
	}
	literal := numberText(stringForm(value))
	if literal == "" {
		return nil, nil
	}
	if result, ok := new(big.Int).SetString(literal, 0); ok {
		return result, nil
	}
	return nil, conversionError(value, target, fmt.Errorf("invalid integer literal %q", literal))
}

func toDecimal(value interface{}, target reflect.Type) (interface{}, error) {
	switch actual := value.(type) {
	case *big.Int:
		return decimal.NewFromBigInt(actual, 0), nil
	case big.Int:
		return decimal.NewFromBigInt(&actual, 0), nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, _ := asInt64(value)
		return decimal.NewFromInt(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rValue.Uint()), 0), nil
	case reflect.Float32:
		return decimal.NewFromFloat32(float32(rValue.Float())), nil
	case reflect.Float64:
		return decimal.NewFromFloat(rValue.Float()), nil
	}
	literal := numberText(stringForm(value))
	if literal == "" {
		return nil, nil
	}
	result, err := decimal.NewFromString(literal)
	if err != nil {
		return nil, conversionError(value, target, err)
	}
	return result, nil
}
