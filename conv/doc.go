// Package conv provides type-directed value conversion.
//
// Builtin converters cover booleans, integers, floats, big numbers, characters, text,
// time values, durations, UUIDs, URLs and collections. Each of them follows the same strict
// conversion steps: resolve target type, map nil to default, verify default, return values
// already satisfying target and finally run type specific algorithm. Registry dispatches
// permissive conversion to custom or builtin converters and falls back to compound
// conversion for record types.
package conv
