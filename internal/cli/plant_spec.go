package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/herbarium/pkg/types"
)

// Flag names accepted in a plant spec and as describe flags.
const (
	flagLeaves = "leaves"
	flagPetals = "petals"
	flagStem   = "stem"
	flagBush   = "bush"
)

// parsePlantSpec builds a plant from "min,max[,flag...]", for example
// "10,30,stem,bush". Whitespace around fields is ignored and flags may
// appear in any order.
func parsePlantSpec(spec string) (types.PlantRecord, error) {
	fields := strings.Split(spec, ",")
	if len(fields) < 2 {
		return types.PlantRecord{}, fmt.Errorf("plant spec %q: want min,max[,flag...]", spec)
	}

	minHeight, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return types.PlantRecord{}, fmt.Errorf("plant spec %q: minimum height: %w", spec, err)
	}
	maxHeight, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return types.PlantRecord{}, fmt.Errorf("plant spec %q: maximum height: %w", spec, err)
	}

	var leaves, petals, stem, bush bool
	for _, f := range fields[2:] {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case flagLeaves:
			leaves = true
		case flagPetals:
			petals = true
		case flagStem:
			stem = true
		case flagBush:
			bush = true
		case "":
		default:
			return types.PlantRecord{}, fmt.Errorf("plant spec %q: unknown flag %q", spec, f)
		}
	}

	p, err := types.NewPlantRecord(minHeight, maxHeight, leaves, petals, stem, bush)
	if err != nil {
		return types.PlantRecord{}, fmt.Errorf("plant spec %q: %w", spec, err)
	}
	return p, nil
}
