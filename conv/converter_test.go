package conv

import (
	"errors"
	"math/big"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Status string

type Level int

func TestTemplate_Convert(t *testing.T) {
	converter := Builtin(reflect.TypeOf(0))

	_, err := converter.Convert("1", nil, nil)
	assert.True(t, errors.Is(err, ErrAmbiguousTarget))

	result, err := converter.Convert(nil, reflect.TypeOf(0), 5)
	assert.Nil(t, err)
	assert.Equal(t, 5, result)

	result, err = converter.Convert("12", nil, 5)
	assert.Nil(t, err)
	assert.Equal(t, 12, result)

	_, err = converter.Convert("12", reflect.TypeOf(0), "x")
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	var mismatch *TypeMismatchError
	assert.True(t, errors.As(err, &mismatch))

	value := 7
	result, err = converter.Convert(&value, reflect.TypeOf(0), nil)
	assert.Nil(t, err)
	assert.Equal(t, 7, result)

	var nilPtr *int
	result, err = converter.Convert(nilPtr, reflect.TypeOf(0), 3)
	assert.Nil(t, err)
	assert.Equal(t, 3, result)

	result, err = converter.Convert("", reflect.TypeOf(0), 9)
	assert.Nil(t, err)
	assert.Equal(t, 9, result)
}

func TestTemplate_Identity(t *testing.T) {
	source := &url.URL{Scheme: "https", Host: "example.com"}
	result, err := Builtin(reflect.TypeOf(source)).Convert(source, reflect.TypeOf(source), nil)
	assert.Nil(t, err)
	assert.Same(t, source, result)
}

func TestQuietly(t *testing.T) {
	converter := Builtin(reflect.TypeOf(0))
	assert.Equal(t, 4, Quietly(converter, "abc", reflect.TypeOf(0), 4))
	assert.Nil(t, Quietly(converter, "1", nil, nil))
	assert.Equal(t, 10, Quietly(converter, "10", reflect.TypeOf(0), 4))
	panicking := Func(func(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error) {
		panic("boom")
	})
	assert.Equal(t, "x", Quietly(panicking, 1, reflect.TypeOf(""), "x"))
}

func TestConvert_Numbers(t *testing.T) {
	registry := NewRegistry()
	testCases := []struct {
		description string
		value       interface{}
		target      reflect.Type
		expect      interface{}
		hasError    bool
	}{
		{description: "text to int", value: "12", target: reflect.TypeOf(0), expect: 12},
		{description: "grouped text", value: " 1,234 ", target: reflect.TypeOf(int64(0)), expect: int64(1234)},
		{description: "fraction text", value: "1.9", target: reflect.TypeOf(0), expect: 1},
		{description: "hex text", value: "0x1f", target: reflect.TypeOf(0), expect: 31},
		{description: "narrowing wraps", value: 300, target: reflect.TypeOf(int8(0)), expect: int8(44)},
		{description: "bool", value: true, target: reflect.TypeOf(0), expect: 1},
		{description: "float truncates", value: 3.99, target: reflect.TypeOf(int32(0)), expect: int32(3)},
		{description: "big int", value: big.NewInt(42), target: reflect.TypeOf(uint16(0)), expect: uint16(42)},
		{description: "decimal", value: decimal.RequireFromString("12.7"), target: reflect.TypeOf(0), expect: 12},
		{description: "time as epoch millis", value: time.UnixMilli(1675209600000), target: reflect.TypeOf(int64(0)), expect: int64(1675209600000)},
		{description: "negative unsigned", value: -1, target: reflect.TypeOf(uint(0)), hasError: true},
		{description: "invalid text", value: "abc", target: reflect.TypeOf(0), hasError: true},
		{description: "text to float", value: "1.5", target: reflect.TypeOf(float64(0)), expect: 1.5},
		{description: "int to float32", value: 2, target: reflect.TypeOf(float32(0)), expect: float32(2)},
		{description: "named int", value: "3", target: reflect.TypeOf(Level(0)), expect: Level(3)},
	}
	for _, testCase := range testCases {
		actual, err := registry.Convert(testCase.value, testCase.target, nil)
		if testCase.hasError {
			assert.True(t, errors.Is(err, ErrConversion), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvert_Bool(t *testing.T) {
	registry := NewRegistry()
	testCases := []struct {
		value  interface{}
		expect bool
	}{
		{value: "true", expect: true},
		{value: " Yes ", expect: true},
		{value: "是", expect: true},
		{value: "on", expect: true},
		{value: "no", expect: false},
		{value: "false", expect: false},
		{value: "whatever", expect: false},
		{value: 2, expect: true},
		{value: 0, expect: false},
		{value: 0.5, expect: true},
		{value: Char('1'), expect: true},
	}
	for _, testCase := range testCases {
		actual, err := registry.Convert(testCase.value, reflect.TypeOf(false), nil)
		assert.Nil(t, err)
		assert.Equal(t, testCase.expect, actual, testCase.value)
	}
}

func TestConvert_CharAndString(t *testing.T) {
	registry := NewRegistry()
	charType := reflect.TypeOf(Char(0))
	actual, err := registry.Convert(true, charType, nil)
	assert.Nil(t, err)
	assert.Equal(t, Char('1'), actual)
	actual, _ = registry.Convert(false, charType, nil)
	assert.Equal(t, Char('0'), actual)
	actual, _ = registry.Convert("abc", charType, nil)
	assert.Equal(t, Char('a'), actual)
	actual, _ = registry.Convert("  ", charType, Char('z'))
	assert.Equal(t, Char('z'), actual)

	stringType := reflect.TypeOf("")
	testCases := []struct {
		value  interface{}
		expect string
	}{
		{value: 123, expect: "123"},
		{value: 1.5, expect: "1.5"},
		{value: true, expect: "true"},
		{value: []byte("hello"), expect: "hello"},
		{value: []int{1, 2, 3}, expect: "1,2,3"},
		{value: Char('x'), expect: "x"},
		{value: time.Date(2023, 2, 1, 10, 20, 30, 0, time.UTC), expect: "2023-02-01 10:20:30"},
		{value: decimal.RequireFromString("1.25"), expect: "1.25"},
		{value: Date{Year: 2023, Month: 2, Day: 1}, expect: "2023-02-01"},
	}
	for _, testCase := range testCases {
		actual, err := registry.Convert(testCase.value, stringType, nil)
		assert.Nil(t, err)
		assert.Equal(t, testCase.expect, actual)
	}
	actual, err = registry.Convert(12, reflect.TypeOf(Status("")), nil)
	assert.Nil(t, err)
	assert.Equal(t, Status("12"), actual)
}

func TestConvert_BigNumbers(t *testing.T) {
	registry := NewRegistry()
	bigType := reflect.TypeOf((*big.Int)(nil))

	actual, err := registry.Convert("123456789012345678901234567890", bigType, nil)
	require.Nil(t, err)
	assert.Equal(t, "123456789012345678901234567890", actual.(*big.Int).String())

	actual, err = registry.Convert(1.9, bigType, nil)
	require.Nil(t, err)
	assert.Equal(t, int64(1), actual.(*big.Int).Int64())

	_, err = registry.Convert("1x", bigType, nil)
	assert.True(t, errors.Is(err, ErrConversion))

	decimalType := reflect.TypeOf(decimal.Decimal{})
	actual, err = registry.Convert("1,234.50", decimalType, nil)
	require.Nil(t, err)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(actual.(decimal.Decimal)))

	actual, err = registry.Convert(big.NewInt(7), decimalType, nil)
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(actual.(decimal.Decimal)))
}

func TestConvert_Time(t *testing.T) {
	registry := NewRegistry()
	expect := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, value := range []interface{}{int64(1675209600000), "2023-02-01", "20230201", "1675209600", expect.Format(time.RFC3339)} {
		actual, err := registry.Convert(value, reflect.TypeOf(time.Time{}), nil)
		require.Nil(t, err, value)
		assert.True(t, expect.Equal(actual.(time.Time)), value)
	}

	actual, err := registry.Convert("2023-02-01 13:14:15", reflect.TypeOf(Date{}), nil)
	require.Nil(t, err)
	assert.Equal(t, Date{Year: 2023, Month: time.February, Day: 1}, actual)

	actual, err = registry.Convert("2023-02-01 13:14:15", reflect.TypeOf(TimeOfDay{}), nil)
	require.Nil(t, err)
	assert.Equal(t, TimeOfDay{Hour: 13, Minute: 14, Second: 15}, actual)

	actual, err = registry.Convert(Date{Year: 2023, Month: time.February, Day: 1}, reflect.TypeOf(time.Time{}), nil)
	require.Nil(t, err)
	assert.True(t, expect.Equal(actual.(time.Time)))

	_, err = registry.Convert("not a date", reflect.TypeOf(time.Time{}), nil)
	assert.True(t, errors.Is(err, ErrConversion))
}

func TestConvert_Extra(t *testing.T) {
	registry := NewRegistry()

	actual, err := registry.Convert("1d2h", reflect.TypeOf(time.Duration(0)), nil)
	require.Nil(t, err)
	assert.Equal(t, 26*time.Hour, actual)

	actual, err = registry.Convert(1500, reflect.TypeOf(time.Duration(0)), nil)
	require.Nil(t, err)
	assert.Equal(t, 1500*time.Nanosecond, actual)

	id := uuid.New()
	actual, err = registry.Convert(id.String(), reflect.TypeOf(uuid.UUID{}), nil)
	require.Nil(t, err)
	assert.Equal(t, id, actual)

	_, err = registry.Convert("nope", reflect.TypeOf(uuid.UUID{}), nil)
	assert.True(t, errors.Is(err, ErrConversion))

	actual, err = registry.Convert("https://example.com/a?b=1", reflect.TypeOf(&url.URL{}), nil)
	require.Nil(t, err)
	assert.Equal(t, "example.com", actual.(*url.URL).Host)
}

func TestConvert_PointerStringers(t *testing.T) {
	registry := NewRegistry()
	location, err := url.Parse("https://example.com/a")
	require.Nil(t, err)
	testCases := []struct {
		description string
		value       interface{}
		target      reflect.Type
		expect      interface{}
	}{
		{description: "big int to string", value: big.NewInt(42), target: reflect.TypeOf(""), expect: "42"},
		{description: "big int to bool", value: big.NewInt(42), target: reflect.TypeOf(false), expect: true},
		{description: "zero big int to bool", value: big.NewInt(0), target: reflect.TypeOf(false), expect: false},
		{description: "big int to float", value: big.NewInt(42), target: reflect.TypeOf(float64(0)), expect: float64(42)},
		{description: "big int to int64", value: big.NewInt(-7), target: reflect.TypeOf(int64(0)), expect: int64(-7)},
		{description: "url to string", value: location, target: reflect.TypeOf(""), expect: "https://example.com/a"},
		{description: "url to named string", value: location, target: reflect.TypeOf(Status("")), expect: Status("https://example.com/a")},
	}
	for _, testCase := range testCases {
		actual, err := registry.Convert(testCase.value, testCase.target, nil)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvert_Collections(t *testing.T) {
	registry := NewRegistry()

	actual, err := registry.Convert("1, 2,3", reflect.TypeOf([]int{}), nil)
	require.Nil(t, err)
	assert.Equal(t, []int{1, 2, 3}, actual)

	actual, err = registry.Convert([]string{"1", "0"}, reflect.TypeOf([]bool{}), nil)
	require.Nil(t, err)
	assert.Equal(t, []bool{true, false}, actual)

	actual, err = registry.Convert([]interface{}{1, "2", 3.0}, reflect.TypeOf([2]int64{}), nil)
	require.Nil(t, err)
	assert.Equal(t, [2]int64{1, 2}, actual)

	actual, err = registry.Convert("abc", reflect.TypeOf([]byte{}), nil)
	require.Nil(t, err)
	assert.Equal(t, []byte("abc"), actual)

	_, err = registry.Convert([]string{"1", "x"}, reflect.TypeOf([]int{}), nil)
	assert.True(t, errors.Is(err, ErrConversion))

	actual, err = registry.Convert(map[string]string{"a": "1"}, reflect.TypeOf(map[string]int{}), nil)
	require.Nil(t, err)
	assert.Equal(t, map[string]int{"a": 1}, actual)

	actual, err = registry.Convert(`{"a":1,"b":"x","c":{"d":true}}`, reflect.TypeOf(map[string]interface{}{}), nil)
	require.Nil(t, err)
	decoded := actual.(map[string]interface{})
	assert.Equal(t, "x", decoded["b"])
	assert.Equal(t, map[string]interface{}{"d": true}, decoded["c"])

	source := map[string]interface{}{"a": []interface{}{1}}
	actual, err = registry.Convert(source, reflect.TypeOf(map[string]interface{}{}), nil)
	require.Nil(t, err)
	assert.Equal(t, reflect.ValueOf(source).Pointer(), reflect.ValueOf(actual).Pointer())

	mapType := reflect.TypeOf(map[string]interface{}{})
	actual, err = registry.newMapConverter(mapType).Convert(source, mapType, nil)
	require.Nil(t, err)
	assert.Equal(t, source, actual)
	actual.(map[string]interface{})["a"] = 2
	assert.Equal(t, []interface{}{1}, source["a"])

	actual, err = registry.Convert("5", reflect.TypeOf(new(int)), nil)
	require.Nil(t, err)
	assert.Equal(t, 5, *actual.(*int))
}

type recordTransformer struct {
	calls int
}

func (r *recordTransformer) Transform(source interface{}, target interface{}) error {
	r.calls++
	values := source.(map[string]interface{})
	target.(*point).X = values["x"].(int)
	return nil
}

type point struct {
	X int
}

func TestRegistry_Compound(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Convert(map[string]interface{}{"x": 1}, reflect.TypeOf(point{}), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedConversion))

	transformer := &recordTransformer{}
	registry.SetTransformer(transformer)
	actual, err := registry.Convert(map[string]interface{}{"x": 1}, reflect.TypeOf(point{}), nil)
	require.Nil(t, err)
	assert.Equal(t, point{X: 1}, actual)

	actual, err = registry.Convert(map[string]interface{}{"x": 2}, reflect.TypeOf(&point{}), nil)
	require.Nil(t, err)
	assert.Equal(t, &point{X: 2}, actual)
	assert.Equal(t, 2, transformer.calls)

	_, err = registry.Convert(12, reflect.TypeOf(point{}), nil)
	assert.True(t, errors.Is(err, ErrConversion))

	source := point{X: 3}
	actual, err = registry.Convert(source, reflect.TypeOf(point{}), nil)
	require.Nil(t, err)
	assert.Equal(t, source, actual)
	assert.Equal(t, 2, transformer.calls)
}

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry()
	intType := reflect.TypeOf(0)
	builtin := registry.Resolve(intType, false)
	assert.NotNil(t, builtin)
	assert.True(t, builtin == Builtin(intType))
	assert.True(t, builtin == NewRegistry().Resolve(intType, true))

	custom := Func(func(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error) {
		return 42, nil
	})
	registry.Register(intType, custom)
	actual, err := registry.Convert("1", intType, nil)
	assert.Nil(t, err)
	assert.Equal(t, 42, actual)

	actual, err = registry.ConvertWith("1", intType, nil, false)
	assert.Nil(t, err)
	assert.Equal(t, 1, actual)
	assert.True(t, registry.Resolve(intType, false) == builtin)

	assert.Nil(t, registry.Resolve(reflect.TypeOf(point{}), true))
}

func TestRegistry_Convert(t *testing.T) {
	registry := NewRegistry()

	actual, err := registry.Convert("x", nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "x", actual)

	actual, err = registry.Convert(nil, reflect.TypeOf(0), 3)
	assert.Nil(t, err)
	assert.Equal(t, 3, actual)

	actual, err = registry.Convert("7", nil, 0)
	assert.Nil(t, err)
	assert.Equal(t, 7, actual)

	actual, err = registry.Convert(1, reflect.TypeOf((*interface{})(nil)).Elem(), nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, actual)

	_, err = registry.Convert(1, reflect.TypeOf(make(chan int)), nil)
	assert.True(t, errors.Is(err, ErrUnsupportedConversion))
	var unsupported *UnsupportedConversionError
	assert.True(t, errors.As(err, &unsupported))
}

func TestTo(t *testing.T) {
	registry := NewRegistry()
	value, err := To(registry, "12", 0)
	assert.Nil(t, err)
	assert.Equal(t, 12, value)

	value, err = To(registry, nil, 5)
	assert.Nil(t, err)
	assert.Equal(t, 5, value)

	flag, err := To[bool](registry, "yes", false)
	assert.Nil(t, err)
	assert.True(t, flag)

	_, err = To(registry, "abc", 0)
	assert.NotNil(t, err)
}
