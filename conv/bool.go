package conv

import (
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
	"github.com/viant/xconv/format/text"
)

func newBoolConverter(target reflect.Type) Converter {
	return newTemplate(target, toBool)
}

func toBool(value interface{}, target reflect.Type) (interface{}, error) {
	var result bool
	switch actual := value.(type) {
	case bool:
		result = actual
	case Char:
		result = actual == '1' || text.Truthy(string(rune(actual)))
	case *big.Int:
		result = actual.Sign() != 0
	case big.Int:
		result = actual.Sign() != 0
	case decimal.Decimal:
		result = !actual.IsZero()
	default:
		rValue := reflect.ValueOf(value)
		switch rValue.Kind() {
		case reflect.Bool:
			result = rValue.Bool()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			result = rValue.Int() != 0
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			result = rValue.Uint() != 0
		case reflect.Float32, reflect.Float64:
			result = rValue.Float() != 0
		default:
			result = text.Truthy(stringForm(value))
		}
	}
	return as(result, target), nil
}
