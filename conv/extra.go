package conv

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xhit/go-str2duration/v2"
)

func newDurationConverter(target reflect.Type) Converter {
	return newTemplate(target, toDuration)
}

func newUUIDConverter(target reflect.Type) Converter {
	return newTemplate(target, toUUID)
}

func newURLConverter(target reflect.Type) Converter {
	return newTemplate(target, toURL)
}

// toDuration converts numbers as nanoseconds and text like "1d2h30m"
func toDuration(value interface{}, target reflect.Type) (interface{}, error) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
	case reflect.Slice:
		if _, ok := value.([]byte); !ok {
			return nil, conversionError(value, target, fmt.Errorf("unsupported duration source"))
		}
	case reflect.Bool, reflect.Struct:
		return nil, conversionError(value, target, fmt.Errorf("unsupported duration source"))
	default:
		nanos, err := asInt64(value)
		if err != nil {
			return nil, conversionError(value, target, err)
		}
		return as(time.Duration(nanos), target), nil
	}
	literal := strings.TrimSpace(stringForm(value))
	if literal == "" {
		return nil, nil
	}
	if nanos, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return as(time.Duration(nanos), target), nil
	}
	duration, err := str2duration.ParseDuration(literal)
	if err != nil {
		return nil, conversionError(value, target, err)
	}
	return as(duration, target), nil
}

func toUUID(value interface{}, target reflect.Type) (interface{}, error) {
	switch actual := value.(type) {
	case [16]byte:
		return uuid.UUID(actual), nil
	case []byte:
		if len(actual) == 16 {
			return uuid.FromBytes(actual)
		}
		result, err := uuid.ParseBytes(actual)
		if err != nil {
			return nil, conversionError(value, target, err)
		}
		return result, nil
	}
	literal := strings.TrimSpace(stringForm(value))
	if literal == "" {
		return nil, nil
	}
	result, err := uuid.Parse(literal)
	if err != nil {
		return nil, conversionError(value, target, err)
	}
	return result, nil
}

func toURL(value interface{}, target reflect.Type) (interface{}, error) {
	if actual, ok := value.(url.URL); ok {
		return &actual, nil
	}
	literal := strings.TrimSpace(stringForm(value))
	if literal == "" {
		return nil, nil
	}
	result, err := url.Parse(literal)
	if err != nil {
		return nil, conversionError(value, target, err)
	}
	return result, nil
}
