package ecs

import "slices"

// World is the central entity registry and component store.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
// Destroying an already dead entity is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Len returns the number of live entities.
func (w *World) Len() int {
	n := 0
	for _, ok := range w.alive {
		if ok {
			n++
		}
	}
	return n
}

// Entities returns every live entity in creation order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.alive))
	for id, ok := range w.alive {
		if ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Add attaches a component to an entity, replacing any existing one of the
// same type. Adding to a dead entity is ignored.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Count returns how many live entities carry a component of type t.
func (w *World) Count(t ComponentType) int {
	return len(w.components[t])
}

// Query returns all alive entities that have every listed component type,
// in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// Add attaches c to id by pointer and returns the stored pointer.
func Add[C Component](w *World, id EntityID, c C) *C {
	p := &c
	// The method set of *C is not visible through the type parameter.
	w.Add(id, any(p).(Component))
	if !w.Alive(id) {
		return nil
	}
	return p
}

// Get returns the component of type C attached to id, or nil.
func Get[C Component](w *World, id EntityID) *C {
	p, _ := any(w.Get(id, TypeOf[C]())).(*C)
	return p
}

// Has reports whether id carries a component of type C.
func Has[C Component](w *World, id EntityID) bool {
	return w.Has(id, TypeOf[C]())
}

// Remove detaches the component of type C from id.
func Remove[C Component](w *World, id EntityID) {
	w.Remove(id, TypeOf[C]())
}
