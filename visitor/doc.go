// Package visitor offers callback based iteration over records, maps, and slices.
package visitor
