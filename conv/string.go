package conv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

func newStringConverter(target reflect.Type) Converter {
	return newTemplate(target, toString)
}

func toString(value interface{}, target reflect.Type) (interface{}, error) {
	return as(stringForm(value), target), nil
}

// stringForm returns text representation of value, slices and arrays are joined with comma
func stringForm(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	case []byte:
		return string(actual)
	case time.Time:
		return actual.Format(DefaultDateLayout)
	case fmt.Stringer:
		return actual.String()
	case error:
		return actual.Error()
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return rValue.String()
	case reflect.Bool:
		return strconv.FormatBool(rValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rValue.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 64)
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return ""
		}
		return stringForm(rValue.Elem().Interface())
	case reflect.Struct:
		// pointer receiver String, i.e. big.Int or url.URL
		ptr := reflect.New(rValue.Type())
		ptr.Elem().Set(rValue)
		if stringer, ok := ptr.Interface().(fmt.Stringer); ok {
			return stringer.String()
		}
	case reflect.Slice, reflect.Array:
		items := make([]string, rValue.Len())
		for i := range items {
			items[i] = stringForm(rValue.Index(i).Interface())
		}
		return strings.Join(items, ",")
	}
	return fmt.Sprint(value)
}
