package conv

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrAmbiguousTarget indicates that neither target type nor default value was supplied.
	ErrAmbiguousTarget = errors.New("ambiguous target type")

	// ErrTypeMismatch indicates a default value not assignable to the target type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupportedConversion indicates no converter exists for the target type.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrConversion indicates a value shape not recognized by the selected converter.
	ErrConversion = errors.New("conversion error")

	// ErrReflectiveAccess indicates a failed instantiation or field access.
	ErrReflectiveAccess = errors.New("reflective access error")
)

// AmbiguousTargetError is returned by strict converters called without target type and default value
type AmbiguousTargetError struct {
	Value interface{}
}

func (e *AmbiguousTargetError) Error() string {
	return fmt.Sprintf("ambiguous target type: no target type or default value for %T", e.Value)
}

// Is reports whether target matches this error type.
func (e *AmbiguousTargetError) Is(target error) bool {
	return target == ErrAmbiguousTarget
}

// TypeMismatchError is returned when default value does not match target type
type TypeMismatchError struct {
	Target  reflect.Type
	Default interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: default value %T is not assignable to %v", e.Default, e.Target)
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// UnsupportedConversionError is returned when no converter is found and target is not a record
type UnsupportedConversionError struct {
	Source  reflect.Type
	Target  reflect.Type
	Message string
}

func (e *UnsupportedConversionError) Error() string {
	msg := fmt.Sprintf("unsupported conversion: %v to %v", e.Source, e.Target)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}

// ConversionError is returned when a converter does not recognize the value shape
type ConversionError struct {
	Value  interface{}
	Target reflect.Type
	Cause  error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("conversion error: cannot convert %T(%v) to %v", e.Value, e.Value, e.Target)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ReflectiveAccessError is returned when a type cannot be instantiated or accessed
type ReflectiveAccessError struct {
	Type  reflect.Type
	Op    string
	Cause error
}

func (e *ReflectiveAccessError) Error() string {
	msg := fmt.Sprintf("reflective access error: failed to %s %v", e.Op, e.Type)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReflectiveAccessError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReflectiveAccessError) Is(target error) bool {
	return target == ErrReflectiveAccess
}

func conversionError(value interface{}, target reflect.Type, cause error) error {
	return &ConversionError{Value: value, Target: target, Cause: cause}
}
