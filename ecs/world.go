package ecs

import "sort"

// System processes entities once per frame
type System interface {
	Update(world *World, dt float64)
}

// World manages all entities, their components and the systems acting on them
type World struct {
	lastID     EntityID
	entities   map[EntityID]*Entity
	components map[EntityID]map[ComponentID]Component
	tagIndex   map[string]map[EntityID]struct{}
	systems    []System
	events     *EventManager
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities:   make(map[EntityID]*Entity),
		components: make(map[EntityID]map[ComponentID]Component),
		tagIndex:   make(map[string]map[EntityID]struct{}),
		events:     NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.lastID++
	entity := newEntity(w.lastID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(map[ComponentID]Component)
	return entity
}

// RemoveEntity removes an entity, its components and its tags
func (w *World) RemoveEntity(id EntityID) {
	entity, ok := w.entities[id]
	if !ok {
		return
	}
	for tag := range entity.Tags {
		delete(w.tagIndex[tag], id)
		if len(w.tagIndex[tag]) == 0 {
			delete(w.tagIndex, tag)
		}
	}
	delete(w.components, id)
	delete(w.entities, id)
}

// GetEntity returns an entity by its ID, or nil
func (w *World) GetEntity(id EntityID) *Entity {
	return w.entities[id]
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// AddComponent attaches a component to an entity, replacing any previous
// component with the same ID. Unknown entities are ignored.
func (w *World) AddComponent(id EntityID, componentID ComponentID, component Component) {
	comps, ok := w.components[id]
	if !ok {
		return
	}
	comps[componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(id EntityID, componentID ComponentID) (Component, bool) {
	component, ok := w.components[id][componentID]
	return component, ok
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(id EntityID, componentID ComponentID) bool {
	_, ok := w.GetComponent(id, componentID)
	return ok
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(id EntityID, componentID ComponentID) {
	delete(w.components[id], componentID)
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(id EntityID, tag string) {
	entity, ok := w.entities[id]
	if !ok {
		return
	}
	entity.Tags[tag] = true
	if w.tagIndex[tag] == nil {
		w.tagIndex[tag] = make(map[EntityID]struct{})
	}
	w.tagIndex[tag][id] = struct{}{}
}

// GetEntitiesWithTag returns the tagged entities in creation order
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	ids := make([]EntityID, 0, len(w.tagIndex[tag]))
	for id := range w.tagIndex[tag] {
		ids = append(ids, id)
	}
	return w.sortedEntities(ids)
}

// FirstWithTag returns the oldest entity carrying tag, or nil
func (w *World) FirstWithTag(tag string) *Entity {
	if tagged := w.GetEntitiesWithTag(tag); len(tagged) > 0 {
		return tagged[0]
	}
	return nil
}

// GetEntitiesWithComponent returns entities owning componentID in creation order
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	var ids []EntityID
	for id, comps := range w.components {
		if _, ok := comps[componentID]; ok {
			ids = append(ids, id)
		}
	}
	return w.sortedEntities(ids)
}

func (w *World) sortedEntities(ids []EntityID) []*Entity {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	entities := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, w.entities[id])
	}
	return entities
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs all systems in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// Subscribe registers an event handler on the world's event bus
func (w *World) Subscribe(eventType EventType, handler EventHandler) {
	w.events.Subscribe(eventType, handler)
}

// EmitEvent dispatches an event on the world's event bus
func (w *World) EmitEvent(event Event) {
	w.events.Emit(event)
}
