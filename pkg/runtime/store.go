package runtime

import (
	"maps"
	"slices"
)

// Variables is the evaluator's store: one value per variable name. The caller
// owns it and passes the same store to every evaluation of a session.
type Variables struct {
	values map[string]Value
}

func NewVariables() *Variables {
	return &Variables{values: make(map[string]Value)}
}

// Get returns the stored value and whether the name is present.
func (v *Variables) Get(name string) (Value, bool) {
	value, ok := v.values[name]
	return value, ok
}

func (v *Variables) Set(name string, value Value) {
	v.values[name] = value
}

func (v *Variables) Delete(name string) {
	delete(v.values, name)
}

func (v *Variables) Len() int {
	return len(v.values)
}

// Names returns the stored names in sorted order.
func (v *Variables) Names() []string {
	return slices.Sorted(maps.Keys(v.values))
}

// Snapshot returns a copy of the current bindings.
func (v *Variables) Snapshot() map[string]Value {
	return maps.Clone(v.values)
}

// Restore replaces every binding with a copy of snapshot.
func (v *Variables) Restore(snapshot map[string]Value) {
	v.values = maps.Clone(snapshot)
	if v.values == nil {
		v.values = make(map[string]Value)
	}
}
