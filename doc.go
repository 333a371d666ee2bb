// Package xconv converts untyped values into requested types and copies properties
// between structs and maps.
//
// Package level functions use a process-wide toolkit configured from XCONV_* environment variables,
// New creates an independent one.
package xconv
