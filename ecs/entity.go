package ecs

import "strconv"

// Entity packs a slot index and a generation. Components that refer to other
// entities store the raw uint64 and convert back with EntityFromRef.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

// NoEntity is the zero handle. It is never alive.
const NoEntity Entity = 0

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

// EntityFromRef converts a stored component reference back into a handle.
func EntityFromRef(ref uint64) Entity {
	return Entity(ref)
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// Ref returns the value components use to hold a reference to e.
func (e Entity) Ref() uint64 {
	return uint64(e)
}

func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}
