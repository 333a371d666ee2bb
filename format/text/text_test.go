package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty(" "))
	assert.Equal(t, "a b", Trim("  a b "))
	assert.True(t, EqualFoldTrim(" Yes", "yES "))
}

func TestTruthy(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      bool
	}{
		{description: "true", text: "true", expect: true},
		{description: "upper yes", text: " YES ", expect: true},
		{description: "one", text: "1", expect: true},
		{description: "on", text: "on", expect: true},
		{description: "false", text: "false", expect: false},
		{description: "zero", text: "0", expect: false},
		{description: "blank", text: "  ", expect: false},
		{description: "other", text: "maybe", expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Truthy(testCase.text), testCase.description)
	}
}

func TestSetTrueValues(t *testing.T) {
	defer SetTrueValues()
	SetTrueValues("si", "oui")
	assert.True(t, Truthy("Si"))
	assert.False(t, Truthy("true"))
	assert.ElementsMatch(t, []string{"si", "oui"}, TrueValues())
}
