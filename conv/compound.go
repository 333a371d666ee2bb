package conv

import (
	"fmt"
	"reflect"

	"github.com/viant/xconv/introspect"
)

// NewCompound creates converter populating new target record from record or map source
// with the registry transformer
func (r *Registry) NewCompound(target reflect.Type) Converter {
	return newTemplate(target, r.toRecord)
}

func (r *Registry) toRecord(value interface{}, target reflect.Type) (interface{}, error) {
	structType := introspect.EnsureStructType(target)
	if structType == nil {
		return nil, &ReflectiveAccessError{Type: target, Op: "instantiate"}
	}
	sourceType := reflect.TypeOf(value)
	if !introspect.IsRecord(sourceType) && !introspect.IsMap(sourceType) {
		return nil, conversionError(value, target, fmt.Errorf("expected record or map source"))
	}
	transformer := r.Transformer()
	if transformer == nil {
		return nil, &UnsupportedConversionError{Source: sourceType, Target: target, Message: "transformer was not set"}
	}
	result := reflect.New(structType)
	if err := transformer.Transform(value, result.Interface()); err != nil {
		return nil, err
	}
	if target.Kind() == reflect.Ptr {
		return result.Interface(), nil
	}
	return result.Elem().Interface(), nil
}
