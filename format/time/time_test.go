package time

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      time.Time
	}{
		{
			description: "iso time",
			input:       "2023-01-02 01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "rfc time",
			input:       "2023-01-02T01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "rfc3339 with zone",
			input:       "2023-01-02T01:22:19Z",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "date",
			input:       "2023-02-01",
			expect:      time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "slash date",
			input:       "2023/02/01",
			expect:      time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "compact date",
			input:       "20230201",
			expect:      time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "epoch millis",
			input:       "1675209600000",
			expect:      time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "epoch seconds",
			input:       "1675209600",
			expect:      time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, testCase := range testCases {
		ts, err := Parse(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.Equal(ts), testCase.description+": "+ts.String())
	}
}

func TestParse_TimeOnly(t *testing.T) {
	ts, err := Parse("10:11:12")
	assert.Nil(t, err)
	now := time.Now().In(Location())
	assert.Equal(t, now.Year(), ts.Year())
	assert.Equal(t, now.YearDay(), ts.YearDay())
	assert.Equal(t, 10, ts.Hour())
	assert.Equal(t, 12, ts.Second())
}

func TestParse_Unrecognized(t *testing.T) {
	_, err := Parse("not a date")
	assert.True(t, errors.Is(err, ErrUnrecognized))
	_, err = Parse(" ")
	assert.True(t, errors.Is(err, ErrUnrecognized))
}

func TestParseFormat(t *testing.T) {
	ts, err := ParseFormat("YYYY-MM-DD", "2023-02-01")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), ts)

	ts, err = ParseLayout("2006-01-02 15:04:05", "2023-02-01T10:00:00")
	assert.Nil(t, err)
	assert.Equal(t, 10, ts.Hour())
}

func TestSetLayouts(t *testing.T) {
	defer SetLayouts()
	SetLayouts("02.01.2006")
	ts, err := Parse("01.02.2023")
	assert.Nil(t, err)
	assert.Equal(t, time.February, ts.Month())
	_, err = Parse("2023-02-01")
	assert.NotNil(t, err)
}
