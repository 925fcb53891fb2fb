package ecs

// EntityID is a unique identifier for an entity within a world. Zero is never
// handed out and means "no entity".
type EntityID uint64

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// Entity represents a game object: an ID plus a set of tags
type Entity struct {
	ID   EntityID
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
