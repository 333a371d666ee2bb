package time

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	ftime "github.com/viant/tagly/format/time"
)

// ErrUnrecognized is returned when date text does not match any known form
var ErrUnrecognized = errors.New("unrecognized date text")

// DefaultLayouts lists date-time layouts tried in order by Parse
var DefaultLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"2006.01.02 15:04:05",
	"2006.01.02",
	"2006年01月02日 15时04分05秒",
	"2006年01月02日",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,
}

var timeOnlyLayouts = []string{"15:04:05.000", "15:04:05", "15:04"}

var (
	layouts  atomic.Pointer[[]string]
	location atomic.Pointer[time.Location]
)

func init() {
	SetLayouts()
	SetLocation(time.UTC)
}

// SetLayouts replaces layouts tried by Parse, empty layouts restore defaults
func SetLayouts(candidates ...string) {
	if len(candidates) == 0 {
		candidates = DefaultLayouts
	}
	cloned := append([]string{}, candidates...)
	layouts.Store(&cloned)
}

// Layouts returns layouts tried by Parse
func Layouts() []string {
	return *layouts.Load()
}

// SetLocation sets location used for texts without zone
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	location.Store(loc)
}

// Location returns location used for texts without zone
func Location() *time.Location {
	return location.Load()
}

// Parse parses free date text: epoch digits, compact digits, known layouts, time only (today)
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty text", ErrUnrecognized)
	}
	loc := Location()
	if isDigits(value) {
		return parseDigits(value, loc)
	}
	for _, layout := range Layouts() {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range timeOnlyLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			now := time.Now().In(loc)
			return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, value)
}

func parseDigits(value string, loc *time.Location) (time.Time, error) {
	switch len(value) {
	case 8:
		return time.ParseInLocation("20060102", value, loc)
	case 14:
		return time.ParseInLocation("20060102150405", value, loc)
	case 10, 13:
		epoch, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		if len(value) == 10 {
			return time.Unix(epoch, 0).In(loc), nil
		}
		return time.UnixMilli(epoch).In(loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, value)
}

func isDigits(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// ParseFormat parses value with ISO date format i.e. YYYY-MM-DD hh:mm:ss
func ParseFormat(dateFormat, value string) (time.Time, error) {
	return ParseLayout(ftime.DateFormatToTimeLayout(dateFormat), value)
}

// ParseLayout parses value with go time layout, tolerating T separator and fraction mismatch
func ParseLayout(layout, value string) (time.Time, error) {
	if layout == "" {
		return Parse(value)
	}
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	loc := Location()
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		if len(value) > len(layout) {
			t, err = time.ParseInLocation(layout, value[:len(layout)], loc)
		} else {
			t, err = time.ParseInLocation(layout[:len(value)], value, loc)
		}
	}
	return t, err
}
