package conv

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/mohae/deepcopy"
	"github.com/viant/xconv/introspect"
)

// jsonObject decodes arbitrary JSON object into generic map
type jsonObject map[string]interface{}

func (o jsonObject) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	o[key] = value
	return nil
}

func (o jsonObject) NKeys() int {
	return 0
}

func decodeJSONObject(data []byte) (map[string]interface{}, error) {
	object := jsonObject{}
	if err := gojay.UnmarshalJSONObject(data, object); err != nil {
		return nil, err
	}
	return object, nil
}

func (r *Registry) newSliceConverter(target reflect.Type) Converter {
	return newTemplate(target, r.toSlice)
}

func (r *Registry) newMapConverter(target reflect.Type) Converter {
	return newTemplate(target, r.toMap)
}

func (r *Registry) newPointerConverter(target reflect.Type) Converter {
	return newTemplate(target, r.toPointer)
}

// toSlice converts slice, array or comma separated text into slice or array of target element type
func (r *Registry) toSlice(value interface{}, target reflect.Type) (interface{}, error) {
	elemType := target.Elem()
	var items []interface{}
	source := reflect.ValueOf(value)
	switch source.Kind() {
	case reflect.String:
		literal := source.String()
		if target.Kind() == reflect.Slice && elemType.Kind() == reflect.Uint8 {
			return reflect.ValueOf([]byte(literal)).Convert(target).Interface(), nil
		}
		if strings.TrimSpace(literal) == "" {
			return nil, nil
		}
		for _, item := range strings.Split(literal, ",") {
			items = append(items, strings.TrimSpace(item))
		}
	case reflect.Slice, reflect.Array:
		items = make([]interface{}, source.Len())
		for i := range items {
			items[i] = source.Index(i).Interface()
		}
	default:
		items = []interface{}{value}
	}
	var result reflect.Value
	if target.Kind() == reflect.Array {
		result = reflect.New(target).Elem()
		if len(items) > target.Len() {
			items = items[:target.Len()]
		}
	} else {
		result = reflect.MakeSlice(target, len(items), len(items))
	}
	for i, item := range items {
		converted, err := r.Convert(item, elemType, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to convert item %d: %w", i, err)
		}
		if converted != nil {
			result.Index(i).Set(reflect.ValueOf(converted))
		}
	}
	return result.Interface(), nil
}

// toMap converts map, record or JSON object text into map of target key and value types
func (r *Registry) toMap(value interface{}, target reflect.Type) (interface{}, error) {
	switch actual := value.(type) {
	case string:
		return r.jsonToMap(value, []byte(actual), target)
	case []byte:
		return r.jsonToMap(value, actual, target)
	}
	source := reflect.ValueOf(value)
	switch {
	case source.Kind() == reflect.Map:
		if source.Type() == target {
			return deepcopy.Copy(value), nil
		}
		return r.convertMap(source, target)
	case introspect.IsRecord(source.Type()):
		transformer := r.Transformer()
		if transformer == nil {
			return nil, &UnsupportedConversionError{Source: source.Type(), Target: target, Message: "transformer was not set"}
		}
		result := reflect.New(target)
		result.Elem().Set(reflect.MakeMap(target))
		if err := transformer.Transform(value, result.Interface()); err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
	return nil, conversionError(value, target, fmt.Errorf("unsupported map source"))
}

func (r *Registry) jsonToMap(value interface{}, data []byte, target reflect.Type) (interface{}, error) {
	literal := strings.TrimSpace(string(data))
	if literal == "" {
		return nil, nil
	}
	if literal[0] != '{' {
		return nil, conversionError(value, target, fmt.Errorf("expected JSON object"))
	}
	object, err := decodeJSONObject([]byte(literal))
	if err != nil {
		return nil, conversionError(value, target, err)
	}
	return r.convertMap(reflect.ValueOf(object), target)
}

func (r *Registry) convertMap(source reflect.Value, target reflect.Type) (interface{}, error) {
	keyType, elemType := target.Key(), target.Elem()
	result := reflect.MakeMapWithSize(target, source.Len())
	iter := source.MapRange()
	for iter.Next() {
		key, err := r.Convert(iter.Key().Interface(), keyType, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to convert key %v: %w", iter.Key().Interface(), err)
		}
		if key == nil {
			continue
		}
		item, err := r.Convert(iter.Value().Interface(), elemType, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to convert value of %v: %w", key, err)
		}
		itemValue := reflect.Zero(elemType)
		if item != nil {
			itemValue = reflect.ValueOf(item)
		}
		result.SetMapIndex(reflect.ValueOf(key), itemValue)
	}
	return result.Interface(), nil
}

func (r *Registry) toPointer(value interface{}, target reflect.Type) (interface{}, error) {
	converted, err := r.Convert(value, target.Elem(), nil)
	if err != nil || converted == nil {
		return nil, err
	}
	result := reflect.New(target.Elem())
	result.Elem().Set(reflect.ValueOf(converted))
	return result.Interface(), nil
}
