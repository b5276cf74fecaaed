package ecs

import "slices"

// record holds every component attached to one entity.
type record map[ComponentType]Component

// World mints entity handles and stores their component records. IDs are
// handed out in increasing order, so ascending ID is creation order.
type World struct {
	nextID  EntityID
	records map[EntityID]record
}

func NewWorld() *World {
	return &World{nextID: 1, records: make(map[EntityID]record)}
}

// CreateEntity mints a new live entity with no components.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.records[id] = make(record)
	return id
}

// DestroyEntity drops the entity and its components. Unknown ids are ignored.
func (w *World) DestroyEntity(id EntityID) { delete(w.records, id) }

func (w *World) Alive(id EntityID) bool {
	_, ok := w.records[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.records) }

// Add attaches or replaces a component. Adding to a destroyed entity is a
// no-op.
func (w *World) Add(id EntityID, c Component) {
	if rec, ok := w.records[id]; ok {
		rec[c.Type()] = c
	}
}

// Get returns the component of type t on id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.records[id][t]
}

func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.records[id][t]
	return ok
}

// Entities returns every live id in ascending order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.records))
	for id := range w.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Query returns the live entities carrying every listed type, in ascending
// ID order. An empty type list matches nothing.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var out []EntityID
	for _, id := range w.Entities() {
		rec := w.records[id]
		if hasAll(rec, types) {
			out = append(out, id)
		}
	}
	return out
}

func hasAll(rec record, types []ComponentType) bool {
	for _, t := range types {
		if _, ok := rec[t]; !ok {
			return false
		}
	}
	return true
}
