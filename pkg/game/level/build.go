package level

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/entities"
	gameworld "crystalhunt/pkg/game/world"
)

// kindInfo is how a level kind maps onto an engine entity
type kindInfo struct {
	Tag     world.Tag
	Extent  mgl32.Vec3
	Solid   bool
	Trigger bool
}

var kindDefaults = map[Kind]kindInfo{
	KindWall:       {Tag: world.TagWall, Extent: mgl32.Vec3{0.5, 1, 0.5}, Solid: true},
	KindCoin:       {Tag: world.TagCollectable, Extent: mgl32.Vec3{0.3, 0.3, 0.3}, Trigger: true},
	KindKey:        {Tag: world.TagCollectable, Extent: mgl32.Vec3{0.25, 0.25, 0.25}, Trigger: true},
	KindGun:        {Tag: world.TagCollectable, Extent: mgl32.Vec3{0.3, 0.2, 0.3}, Trigger: true},
	KindMask:       {Tag: world.TagCollectable, Extent: mgl32.Vec3{0.3, 0.3, 0.2}, Trigger: true},
	KindCrystal:    {Tag: world.TagCollectable, Extent: mgl32.Vec3{0.3, 0.4, 0.3}, Trigger: true},
	KindDoor:       {Tag: world.TagDoor, Extent: mgl32.Vec3{1.5, 1, 0.2}, Solid: true},
	KindWater:      {Tag: world.TagWater, Extent: mgl32.Vec3{1, 0.5, 1}, Trigger: true},
	KindGas:        {Tag: world.TagGas, Extent: mgl32.Vec3{1, 1, 1}, Trigger: true},
	KindRoom2Start: {Tag: world.TagRoom2Start, Extent: mgl32.Vec3{1, 1, 0.5}, Trigger: true},
	KindMonster:    {Tag: world.TagMonster, Extent: mgl32.Vec3{0.8, 1, 0.8}, Solid: true},
}

var itemKinds = map[Kind]entities.ItemKind{
	KindKey:     entities.ItemKey,
	KindGun:     entities.ItemGun,
	KindMask:    entities.ItemMask,
	KindCrystal: entities.ItemCrystal,
}

// Build spawns every entity of the level into w
func (l *Level) Build(w *world.World) error {
	for i, spec := range l.Entities {
		e, err := newEntity(spec)
		if err != nil {
			return fmt.Errorf("entity %d (%s): %w", i, spec.Name, err)
		}
		w.Spawn(e)
	}
	log.Printf("Level %q built with %d entities", l.Name, w.Len())
	return nil
}

func newEntity(spec EntitySpec) (*world.Entity, error) {
	info, ok := kindDefaults[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", spec.Kind, ErrUnknownKind)
	}
	pos, err := spec.Position.Vec3()
	if err != nil {
		return nil, err
	}
	extent := info.Extent
	if spec.Extent != nil {
		if extent, err = spec.Extent.Vec3(); err != nil {
			return nil, err
		}
	}

	name := spec.Name
	if name == "" {
		name = string(spec.Kind)
	}
	e := world.NewEntity(name, info.Tag, pos, extent)
	e.Yaw = spec.Yaw
	e.Solid = info.Solid
	e.Trigger = info.Trigger
	attach(e, spec)
	return e, nil
}

// attach gives the entity the behaviour its kind calls for
func attach(e *world.Entity, spec EntitySpec) {
	switch spec.Kind {
	case KindCoin:
		coin := entities.NewCoin(e)
		if spec.Value != 0 {
			coin.Value = spec.Value
		}
		gameworld.InitGameData(e).Coin = coin
	case KindKey, KindGun, KindMask, KindCrystal:
		gameworld.AttachItem(e, entities.NewItem(itemKinds[spec.Kind], e))
	case KindDoor:
		gameworld.InitGameData(e).Door = entities.NewDoor(e, spec.RequiredScore)
	case KindMonster:
		gameworld.InitGameData(e).Monster = entities.NewMonster(e)
	}
}

// Prefabs builds the entities the game spawns at runtime
type Prefabs struct{}

// New creates an unspawned entity for the prefab at pos facing yaw
func (Prefabs) New(p entities.Prefab, pos mgl32.Vec3, yaw float32) *world.Entity {
	switch p {
	case entities.PrefabCrystal:
		e, _ := newEntity(EntitySpec{Name: "crystal", Kind: KindCrystal, Position: Vec{pos[0], pos[1], pos[2]}, Yaw: yaw})
		return e
	case entities.PrefabProjectile:
		e := world.NewEntity("projectile", world.TagProjectile, pos, mgl32.Vec3{0.1, 0.1, 0.1})
		e.Yaw = yaw
		return e
	}
	return nil
}
