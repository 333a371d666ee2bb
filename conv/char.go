package conv

import (
	"reflect"
	"unicode/utf8"

	"github.com/viant/xconv/format/text"
)

// Char represents a single character
type Char rune

// String returns character as text
func (c Char) String() string {
	return string(rune(c))
}

func newCharConverter(target reflect.Type) Converter {
	return newTemplate(target, toChar)
}

func toChar(value interface{}, target reflect.Type) (interface{}, error) {
	if flag, ok := value.(bool); ok {
		if flag {
			return as(Char('1'), target), nil
		}
		return as(Char('0'), target), nil
	}
	literal := stringForm(value)
	if text.IsBlank(literal) {
		return nil, nil
	}
	r, _ := utf8.DecodeRuneInString(literal)
	return as(Char(r), target), nil
}
