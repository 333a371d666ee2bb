package text

import (
	"strings"
	"sync/atomic"
)

// DefaultTrueValues lists texts evaluated as true
var DefaultTrueValues = []string{"true", "yes", "y", "t", "ok", "1", "on", "是", "对", "真", "對", "√"}

var trueValues atomic.Pointer[map[string]struct{}]

func init() {
	SetTrueValues(DefaultTrueValues...)
}

// SetTrueValues replaces true vocabulary, empty values restore defaults
func SetTrueValues(values ...string) {
	if len(values) == 0 {
		values = DefaultTrueValues
	}
	vocabulary := make(map[string]struct{}, len(values))
	for _, value := range values {
		if value = strings.ToLower(strings.TrimSpace(value)); value != "" {
			vocabulary[value] = struct{}{}
		}
	}
	trueValues.Store(&vocabulary)
}

// TrueValues returns current true vocabulary
func TrueValues() []string {
	vocabulary := *trueValues.Load()
	result := make([]string, 0, len(vocabulary))
	for value := range vocabulary {
		result = append(result, value)
	}
	return result
}

// Truthy returns true if trimmed text belongs to the true vocabulary, matching ignores case
func Truthy(text string) bool {
	if IsBlank(text) {
		return false
	}
	_, ok := (*trueValues.Load())[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
