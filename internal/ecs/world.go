package ecs

import "slices"

// entity is the component set of one live entity, keyed by type.
type entity map[ComponentType]Component

// World owns every entity of a session and the components attached to them.
//
// Components live with their entity; byType indexes which entities carry a
// given type so queries only scan candidates. An ID is alive exactly while
// it has an entry in entities, and IDs are never reused.
type World struct {
	last     EntityID
	entities map[EntityID]entity
	byType   map[ComponentType]map[EntityID]struct{}
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]entity),
		byType:   make(map[ComponentType]map[EntityID]struct{}),
	}
}

// CreateEntity returns a fresh live entity with no components.
func (w *World) CreateEntity() EntityID {
	w.last++
	w.entities[w.last] = entity{}
	return w.last
}

// DestroyEntity drops id and everything attached to it, including any
// inventory it owns. Unknown or already destroyed IDs are ignored.
func (w *World) DestroyEntity(id EntityID) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	for t := range e {
		w.unindex(id, t)
	}
	delete(w.entities, id)
}

// Alive reports whether id was created and not yet destroyed.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Add attaches c to id, replacing any component of the same type.
// Adding to a dead entity does nothing.
func (w *World) Add(id EntityID, c Component) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	t := c.Type()
	e[t] = c
	set := w.byType[t]
	if set == nil {
		set = make(map[EntityID]struct{})
		w.byType[t] = set
	}
	set[id] = struct{}{}
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.entities[id][t]
}

// Remove detaches id's component of type t, if any.
func (w *World) Remove(id EntityID, t ComponentType) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	if _, had := e[t]; !had {
		return
	}
	delete(e, t)
	w.unindex(id, t)
}

// Has reports whether id carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.entities[id][t]
	return ok
}

// Query returns the live entities carrying every listed type, in ascending
// ID order. No types matches nothing.
func (w *World) Query(types ...ComponentType) []EntityID {
	var ids []EntityID
	w.scan(types, func(id EntityID) { ids = append(ids, id) })
	slices.Sort(ids)
	return ids
}

// First returns the lowest-ID entity Query(types...) would return.
// ok is false when nothing matches.
func (w *World) First(types ...ComponentType) (EntityID, bool) {
	best := NilEntity
	w.scan(types, func(id EntityID) {
		if best == NilEntity || id < best {
			best = id
		}
	})
	return best, best != NilEntity
}

// scan calls fn for each matching entity in map order. Candidates come from
// the rarest type's index.
func (w *World) scan(types []ComponentType, fn func(EntityID)) {
	if len(types) == 0 {
		return
	}
	rarest := w.byType[types[0]]
	for _, t := range types[1:] {
		if len(w.byType[t]) < len(rarest) {
			rarest = w.byType[t]
		}
	}
	for id := range rarest {
		if w.hasAll(id, types) {
			fn(id)
		}
	}
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	e := w.entities[id]
	for _, t := range types {
		if _, ok := e[t]; !ok {
			return false
		}
	}
	return true
}

func (w *World) unindex(id EntityID, t ComponentType) {
	set := w.byType[t]
	delete(set, id)
	if len(set) == 0 {
		delete(w.byType, t)
	}
}
