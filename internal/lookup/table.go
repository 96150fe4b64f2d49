// Package lookup holds the static code tables used to translate D&D Beyond
// ids and display names into VTT system codes.
//
// Every exported lookup is total: an unknown key yields the table's
// documented fallback, never an error.
package lookup

// table is a closed mapping with a fallback for unknown keys
type table[K comparable, V ~string] struct {
	entries  map[K]V
	fallback V
}

func (t table[K, V]) get(key K) V {
	if v, ok := t.entries[key]; ok {
		return v
	}
	return t.fallback
}

func (t table[K, V]) has(key K) bool {
	_, ok := t.entries[key]
	return ok
}
