package conv

import (
	"fmt"
	"reflect"
	"time"

	ftime "github.com/viant/xconv/format/time"
)

type (
	// Date represents calendar date without time of day
	Date struct {
		Year  int
		Month time.Month
		Day   int
	}

	// TimeOfDay represents wall clock time without date
	TimeOfDay struct {
		Hour       int
		Minute     int
		Second     int
		Nanosecond int
	}
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	dateType      = reflect.TypeOf(Date{})
	timeOfDayType = reflect.TypeOf(TimeOfDay{})
)

// DateOf returns date part of t
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns midnight of the date in supplied location
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = ftime.Location()
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsZero returns true for zero date
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// TimeOfDayOf returns clock part of t
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// On returns time of day on supplied date
func (t TimeOfDay) On(date Date, loc *time.Location) time.Time {
	if loc == nil {
		loc = ftime.Location()
	}
	return time.Date(date.Year, date.Month, date.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, loc)
}

func (t TimeOfDay) String() string {
	if t.Nanosecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanosecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func newTimeConverter(target reflect.Type) Converter {
	return newTemplate(target, toTime)
}

// toTime converts numbers as epoch milliseconds and text using configured layouts
func toTime(value interface{}, target reflect.Type) (interface{}, error) {
	ts, err := asTime(value)
	if err != nil {
		return nil, conversionError(value, target, err)
	}
	if ts == nil {
		return nil, nil
	}
	switch target {
	case dateType:
		return DateOf(*ts), nil
	case timeOfDayType:
		return TimeOfDayOf(*ts), nil
	case timeType:
		return *ts, nil
	}
	rValue := reflect.ValueOf(*ts)
	if !rValue.Type().ConvertibleTo(target) {
		return nil, conversionError(value, target, fmt.Errorf("unsupported time target"))
	}
	return rValue.Convert(target).Interface(), nil
}

func asTime(value interface{}) (*time.Time, error) {
	var ts time.Time
	switch actual := value.(type) {
	case time.Time:
		ts = actual
	case Date:
		ts = actual.Time(nil)
	case TimeOfDay:
		ts = actual.On(DateOf(time.Now().In(ftime.Location())), nil)
	case []byte:
		return asTime(string(actual))
	default:
		rValue := reflect.ValueOf(value)
		switch rValue.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
			reflect.Float32, reflect.Float64:
			millis, err := asInt64(value)
			if err != nil {
				return nil, err
			}
			ts = time.UnixMilli(millis).In(ftime.Location())
		case reflect.String:
			literal := rValue.String()
			if isBlankText(literal) {
				return nil, nil
			}
			parsed, err := ftime.Parse(literal)
			if err != nil {
				return nil, err
			}
			ts = parsed
		default:
			return nil, fmt.Errorf("unsupported time source %T", value)
		}
	}
	return &ts, nil
}
