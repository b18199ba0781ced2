package ecs

import "slices"

// World is the central entity registry and component store.
//
// Destruction is two-phase: Kill queues an entity and Maintain removes it.
// Until Maintain runs, a killed entity keeps all of its components so that
// later systems in the same pass still see a consistent view.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	dying      map[EntityID]bool
	tags       map[EntityID]TagMask
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		dying:      make(map[EntityID]bool),
		tags:       make(map[EntityID]TagMask),
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

// DestroyEntity immediately marks the entity dead and removes its components and tags.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	delete(w.dying, id)
	delete(w.tags, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Kill schedules id for destruction at the next Maintain call.
// Killing an entity twice is the same as killing it once.
func (w *World) Kill(id EntityID) {
	if w.alive[id] {
		w.dying[id] = true
	}
}

// Dying reports whether id has been killed but not yet swept.
func (w *World) Dying(id EntityID) bool {
	return w.dying[id]
}

// Maintain destroys every entity queued by Kill and returns how many were removed.
func (w *World) Maintain() int {
	n := 0
	for id := range w.dying {
		w.DestroyEntity(id)
		n++
	}
	clear(w.dying)
	return n
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Entities returns every alive entity in creation order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.alive))
	for id := range w.alive {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Add attaches a component to an entity, replacing any component of the same type.
// Adding to an entity that is not alive is a no-op.
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

// Clear drops every component of type t from every entity.
func (w *World) Clear(t ComponentType) {
	clear(w.components[t])
}

// Count returns how many entities currently hold a component of type t.
func (w *World) Count(t ComponentType) int {
	return len(w.components[t])
}

// Tag sets the given tag bits on an entity.
func (w *World) Tag(id EntityID, mask TagMask) {
	if !w.alive[id] {
		return
	}
	w.tags[id] |= mask
}

// Untag clears the given tag bits on an entity.
func (w *World) Untag(id EntityID, mask TagMask) {
	if m, ok := w.tags[id]; ok {
		w.tags[id] = m &^ mask
	}
}

// HasTag reports whether the entity carries every bit in mask.
func (w *World) HasTag(id EntityID, mask TagMask) bool {
	return w.tags[id].Has(mask)
}

// Tags returns the full tag set of an entity.
func (w *World) Tags(id EntityID) TagMask {
	return w.tags[id]
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

// QueryTagged is Query further restricted to entities carrying every bit in mask.
// With no component types it scans the tag table alone.
func (w *World) QueryTagged(mask TagMask, types ...ComponentType) []EntityID {
	if len(types) == 0 {
		var result []EntityID
		for id, m := range w.tags {
			if w.alive[id] && m.Has(mask) {
				result = append(result, id)
			}
		}
		slices.Sort(result)
		return result
	}
	return slices.DeleteFunc(w.Query(types...), func(id EntityID) bool {
		return !w.tags[id].Has(mask)
	})
}
