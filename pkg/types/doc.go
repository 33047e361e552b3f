// Package types defines the Plant capability, the PlantRecord value type,
// and the error kinds returned when a plant cannot be constructed.
//
// PlantRecord values are immutable once built and may be shared freely
// across goroutines.
package types
