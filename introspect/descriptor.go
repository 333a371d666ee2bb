package introspect

import (
	"reflect"
	"strings"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

const formatTag = "format"

// Descriptor represents ordered accessors of a struct type
type Descriptor struct {
	Type   reflect.Type
	Items  []*Accessor
	Map    map[string]int
	byName map[string]*Accessor
}

// Lookup returns accessor for supplied name or nil
func (d *Descriptor) Lookup(name string) *Accessor {
	index, ok := d.Map[name]
	if !ok {
		return nil
	}
	return d.Items[index]
}

// Names returns accessor names in declaration order
func (d *Descriptor) Names() []string {
	result := make([]string, len(d.Items))
	for i, item := range d.Items {
		result[i] = item.Name
	}
	return result
}

// Len returns accessor count
func (d *Descriptor) Len() int {
	return len(d.Items)
}

func (d *Descriptor) add(accessor *Accessor) {
	if _, ok := d.Map[accessor.Name]; ok {
		return //outer field shadows promoted one
	}
	accessor.Index = len(d.Items)
	d.Map[accessor.Name] = accessor.Index
	d.Items = append(d.Items, accessor)
	d.byName[accessor.Name] = accessor
}

// NewDescriptor introspects exported fields of supplied struct type
func NewDescriptor(t reflect.Type) *Descriptor {
	t = EnsureStructType(t)
	ret := &Descriptor{Type: t, Map: map[string]int{}, byName: map[string]*Accessor{}}
	if t == nil {
		return ret
	}
	ret.build(t, nil)
	return ret
}

func (d *Descriptor) build(t reflect.Type, ancestors []*xunsafe.Field) {
	var embedded []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		sField := t.Field(i)
		name, ignore, explicit := fieldName(sField)
		if ignore {
			continue
		}
		if sField.Anonymous && !explicit && sField.Type.Kind() == reflect.Struct && !isTimeType(sField.Type) {
			embedded = append(embedded, sField)
			continue
		}
		if !sField.IsExported() {
			continue
		}
		dateFormat, timeLayout := timeFormat(sField)
		d.add(&Accessor{
			Name:       name,
			FieldName:  sField.Name,
			Type:       sField.Type,
			Tag:        sField.Tag,
			DateFormat: dateFormat,
			TimeLayout: timeLayout,
			field:      xunsafe.NewField(sField),
			ancestors:  ancestors,
			kind:       sField.Type.Kind(),
		})
	}
	for _, sField := range embedded {
		chain := append(append([]*xunsafe.Field{}, ancestors...), xunsafe.NewField(sField))
		d.build(sField.Type, chain)
	}
}

// fieldName resolves accessor name: json tag name, then format tag name, then field name
func fieldName(field reflect.StructField) (string, bool, bool) {
	if jsonTag, ok := field.Tag.Lookup("json"); ok {
		name := jsonTag
		if index := strings.Index(jsonTag, ","); index != -1 {
			name = jsonTag[:index]
		}
		if name == "-" {
			return "", true, false
		}
		if name != "" {
			return name, false, true
		}
	}
	if tag := formatOf(field); tag != nil {
		if tag.Ignore {
			return "", true, false
		}
		if tag.Name != "" {
			return tag.Name, false, true
		}
	}
	return field.Name, false, false
}

// timeFormat returns date format and time layout declared with format tag, timeLayout tag is used as fallback
func timeFormat(field reflect.StructField) (string, string) {
	var dateFormat, timeLayout string
	if tag := formatOf(field); tag != nil {
		dateFormat, timeLayout = tag.DateFormat, tag.TimeLayout
	}
	if timeLayout == "" {
		timeLayout = field.Tag.Get("timeLayout")
	}
	return dateFormat, timeLayout
}

func formatOf(field reflect.StructField) *format.Tag {
	if _, ok := field.Tag.Lookup(formatTag); !ok {
		return nil
	}
	tag, err := format.Parse(field.Tag)
	if err != nil {
		return nil
	}
	return tag
}
