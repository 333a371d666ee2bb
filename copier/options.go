package copier

import (
	"github.com/viant/tagly/format/text"
)

type (
	// Options represents copy policy
	Options struct {
		IgnoreNullValue   bool
		IgnoreEmptyString bool
		IgnoreProperties  map[string]bool
		ValueConverters   []ValueConverter
		// FieldMapping maps source property name to destination property name
		FieldMapping map[string]string
		// FieldNameEditor rewrites source property name into destination property name, applied after FieldMapping
		FieldNameEditor func(name string) string
	}

	// Option represents copy option
	Option func(o *Options)
)

// WithIgnoreNullValue skips nil source values instead of writing destination zero value
func WithIgnoreNullValue(flag bool) Option {
	return func(o *Options) {
		o.IgnoreNullValue = flag
	}
}

// WithIgnoreEmptyString skips empty string source values
func WithIgnoreEmptyString(flag bool) Option {
	return func(o *Options) {
		o.IgnoreEmptyString = flag
	}
}

// WithIgnoreProperties skips listed source or destination properties
func WithIgnoreProperties(names ...string) Option {
	return func(o *Options) {
		if o.IgnoreProperties == nil {
			o.IgnoreProperties = make(map[string]bool, len(names))
		}
		for _, name := range names {
			o.IgnoreProperties[name] = true
		}
	}
}

// WithValueConverter appends value converters, the first matching one wins
func WithValueConverter(converters ...ValueConverter) Option {
	return func(o *Options) {
		o.ValueConverters = append(o.ValueConverters, converters...)
	}
}

// WithFieldMapping sets source to destination property name mapping
func WithFieldMapping(mapping map[string]string) Option {
	return func(o *Options) {
		if o.FieldMapping == nil {
			o.FieldMapping = make(map[string]string, len(mapping))
		}
		for k, v := range mapping {
			o.FieldMapping[k] = v
		}
	}
}

// WithFieldNameEditor sets property name editor
func WithFieldNameEditor(editor func(name string) string) Option {
	return func(o *Options) {
		o.FieldNameEditor = editor
	}
}

// WithCaseFormat rewrites source property names into supplied case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return WithFieldNameEditor(CaseFormatEditor(caseFormat))
}

// CaseFormatEditor returns name editor converting detected name case into supplied case format
func CaseFormatEditor(caseFormat text.CaseFormat) func(name string) string {
	return func(name string) string {
		if caseFormat == "" || name == "" {
			return name
		}
		from := text.DetectCaseFormat(name)
		if !from.IsDefined() {
			from = text.CaseFormatUpperCamel
		}
		if from == caseFormat {
			return name
		}
		return from.Format(name, caseFormat)
	}
}

// NewOptions creates copy options
func NewOptions(opts ...Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (o *Options) ignored(names ...string) bool {
	if len(o.IgnoreProperties) == 0 {
		return false
	}
	for _, name := range names {
		if o.IgnoreProperties[name] {
			return true
		}
	}
	return false
}

// destination returns destination property name for source property name
func (o *Options) destination(name string) string {
	if mapped, ok := o.FieldMapping[name]; ok {
		name = mapped
	}
	if o.FieldNameEditor != nil {
		name = o.FieldNameEditor(name)
	}
	return name
}

func (o *Options) valueConverter(key string) ValueConverter {
	for _, candidate := range o.ValueConverters {
		if candidate.Matches(key) {
			return candidate
		}
	}
	return nil
}
