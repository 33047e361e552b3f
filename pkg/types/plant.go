package types

import (
	"cmp"
	"fmt"
	"reflect"
)

// Default tree shape produced by DefaultPlantRecord.
const (
	DefaultMinimumHeight = 10
	DefaultMaximumHeight = 30
)

// Plant is the capability shared by every kind of plant. PlantRecord is the
// base implementation; concrete kinds embed it and inherit its methods.
type Plant interface {
	MinimumHeight() int
	MaximumHeight() int
	HasLeaves() bool
	HasPetals() bool
	HasStem() bool
	HasBush() bool

	// Equal reports whether other is a Plant with the same six attributes.
	Equal(other any) bool

	// Hash returns a value that is equal for any two Equal plants.
	Hash() uint32

	// Compare orders plants; it returns 0 exactly when Equal is true.
	Compare(other Plant) int

	String() string
}

// PlantRecord is an immutable plant with validated height bounds and
// morphological flags. Heights are in meters. The zero value is not a
// valid plant; build one with NewPlantRecord or DefaultPlantRecord.
type PlantRecord struct {
	minimumHeight int
	maximumHeight int
	hasLeaves     bool
	hasPetals     bool
	hasStem       bool
	hasBush       bool
}

var _ Plant = PlantRecord{}

// NewPlantRecord validates its arguments and returns the plant they describe.
// The checks run in order and the first failure is returned:
//   - both heights must be positive (ErrHeightNotPositive);
//   - leaves and petals require a stem (ErrStemRequired);
//   - at least one flag must be set (ErrNotAPlant).
//
// Every error wraps ErrInvalidArgument. The minimum height may exceed the
// maximum height; no ordering between the two is enforced.
func NewPlantRecord(minimumHeight, maximumHeight int, hasLeaves, hasPetals, hasStem, hasBush bool) (PlantRecord, error) {
	if minimumHeight <= 0 {
		return PlantRecord{}, ErrHeightNotPositive
	}
	if maximumHeight <= 0 {
		return PlantRecord{}, ErrHeightNotPositive
	}
	if (hasLeaves || hasPetals) && !hasStem {
		return PlantRecord{}, ErrStemRequired
	}
	if !hasLeaves && !hasPetals && !hasStem && !hasBush {
		return PlantRecord{}, ErrNotAPlant
	}
	return PlantRecord{
		minimumHeight: minimumHeight,
		maximumHeight: maximumHeight,
		hasLeaves:     hasLeaves,
		hasPetals:     hasPetals,
		hasStem:       hasStem,
		hasBush:       hasBush,
	}, nil
}

// MustPlantRecord is like NewPlantRecord but panics on invalid arguments.
// Use it for literals known to be valid.
func MustPlantRecord(minimumHeight, maximumHeight int, hasLeaves, hasPetals, hasStem, hasBush bool) PlantRecord {
	p, err := NewPlantRecord(minimumHeight, maximumHeight, hasLeaves, hasPetals, hasStem, hasBush)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPlantRecord returns a tree: 10 to 30 meters tall, with a stem and a
// bush but no leaves or petals.
func DefaultPlantRecord() PlantRecord {
	return MustPlantRecord(DefaultMinimumHeight, DefaultMaximumHeight, false, false, true, true)
}

// MinimumHeight returns the minimum height in meters.
func (p PlantRecord) MinimumHeight() int { return p.minimumHeight }

// MaximumHeight returns the maximum height in meters.
func (p PlantRecord) MaximumHeight() int { return p.maximumHeight }

// HasLeaves reports whether the plant has leaves.
func (p PlantRecord) HasLeaves() bool { return p.hasLeaves }

// HasPetals reports whether the plant has petals.
func (p PlantRecord) HasPetals() bool { return p.hasPetals }

// HasStem reports whether the plant has a stem.
func (p PlantRecord) HasStem() bool { return p.hasStem }

// HasBush reports whether the plant has a bush at the top.
func (p PlantRecord) HasBush() bool { return p.hasBush }

// Equal reports whether other is a Plant whose six attributes all match p.
// A nil value, a nil pointer, or a value that does not implement Plant is
// never equal. Stem is compared with stem and bush with bush.
func (p PlantRecord) Equal(other any) bool {
	switch o := other.(type) {
	case nil:
		return false
	case PlantRecord:
		return p == o
	case *PlantRecord:
		return o != nil && p == *o
	case Plant:
		if isNilPointer(o) {
			return false
		}
		return p.minimumHeight == o.MinimumHeight() &&
			p.maximumHeight == o.MaximumHeight() &&
			p.hasLeaves == o.HasLeaves() &&
			p.hasPetals == o.HasPetals() &&
			p.hasStem == o.HasStem() &&
			p.hasBush == o.HasBush()
	default:
		return false
	}
}

// Hash combines the attributes in the order minimum height, maximum height,
// leaves, bush, petals, stem. Starting from 1, each step computes
// h = 31*h + v, where a height contributes its value and a flag contributes
// 1231 when set and 1237 otherwise. Arithmetic wraps at 32 bits.
func (p PlantRecord) Hash() uint32 {
	h := uint32(1)
	for _, v := range []uint32{
		uint32(int32(p.minimumHeight)),
		uint32(int32(p.maximumHeight)),
		boolHash(p.hasLeaves),
		boolHash(p.hasBush),
		boolHash(p.hasPetals),
		boolHash(p.hasStem),
	} {
		h = 31*h + v
	}
	return h
}

// Compare returns -1, 0 or +1 ordering p against other by minimum height,
// then maximum height, then leaves, petals, stem and bush with unset
// before set. other must not be nil.
func (p PlantRecord) Compare(other Plant) int {
	if c := cmp.Compare(p.minimumHeight, other.MinimumHeight()); c != 0 {
		return c
	}
	if c := cmp.Compare(p.maximumHeight, other.MaximumHeight()); c != 0 {
		return c
	}
	if c := compareBool(p.hasLeaves, other.HasLeaves()); c != 0 {
		return c
	}
	if c := compareBool(p.hasPetals, other.HasPetals()); c != 0 {
		return c
	}
	if c := compareBool(p.hasStem, other.HasStem()); c != 0 {
		return c
	}
	return compareBool(p.hasBush, other.HasBush())
}

// String describes the plant over several lines, one attribute per line.
func (p PlantRecord) String() string {
	return fmt.Sprintf("This is a plant with \nminimum height:%d, \nmaximum height: %d, \nhasLeaves: %t, \nhasPetals %t, \nhasStem: %t, \nhasBush: %t",
		p.minimumHeight, p.maximumHeight, p.hasLeaves, p.hasPetals, p.hasStem, p.hasBush)
}

// ComparePlants orders a before b using a.Compare. It fits slices.SortFunc.
func ComparePlants(a, b Plant) int {
	return a.Compare(b)
}

func boolHash(b bool) uint32 {
	if b {
		return 1231
	}
	return 1237
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// isNilPointer catches typed nil pointers stored in a Plant interface, whose
// promoted value-receiver methods would otherwise panic.
func isNilPointer(p Plant) bool {
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
