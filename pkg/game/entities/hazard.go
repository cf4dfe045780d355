package entities

import (
	"crystalhunt/pkg/engine/world"
)

// HazardType represents the kinds of deadly zones
type HazardType int

const (
	HazardWater HazardType = iota // Drowning - always fatal
	HazardGas                     // Toxic gas - fatal without the mask
)

// HazardInfo contains the rules for each hazard type
type HazardInfo struct {
	Name         string
	Tag          world.Tag
	Checkpoint   string // Name of the respawn checkpoint in the level
	MaskProtects bool
}

// HazardTypes maps hazard types to their rules
var HazardTypes = map[HazardType]HazardInfo{
	HazardWater: {
		Name:       "Water",
		Tag:        world.TagWater,
		Checkpoint: "room2",
	},
	HazardGas: {
		Name:         "Toxic Gas",
		Tag:          world.TagGas,
		Checkpoint:   "room3",
		MaskProtects: true,
	},
}

// String returns the hazard's display name
func (h HazardType) String() string {
	return HazardTypes[h].Name
}

// HazardForTag returns the hazard type a zone tag denotes
func HazardForTag(tag world.Tag) (HazardType, bool) {
	for t, info := range HazardTypes {
		if info.Tag == tag {
			return t, true
		}
	}
	return 0, false
}

// IsFatal returns true if entering the hazard kills a player with or without the mask
func (h HazardType) IsFatal(hasMask bool) bool {
	return !(HazardTypes[h].MaskProtects && hasMask)
}
