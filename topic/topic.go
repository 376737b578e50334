// Package topic builds event criteria sets: an ordered OR of AND-groups, each
// group mapping topic slots to the value they must match.
package topic

import "strconv"

// MaxSlots is the number of topic slots Thor matches on (topic0..topic4).
// Builder does not enforce it, the event filter rejects out-of-range slots.
const MaxSlots = 5

// Criteria is one AND-group keyed by "topic<slot>".
type Criteria map[string]string

// Key returns the criteria key for a slot.
func Key(slot int) string {
	return "topic" + strconv.Itoa(slot)
}

// Builder accumulates criteria groups. A Builder is meant for building a
// single query and is not safe for concurrent use.
type Builder struct {
	groups []Criteria
}

func New() *Builder {
	return &Builder{}
}

// Topic sets slot in the current group, opening the first group if needed.
func (b *Builder) Topic(slot int, value string) *Builder {
	b.current()[Key(slot)] = value
	return b
}

// And sets slot in the most recently opened group.
func (b *Builder) And(slot int, value string) *Builder {
	b.current()[Key(slot)] = value
	return b
}

// Or closes the current group and opens a new one holding slot.
func (b *Builder) Or(slot int, value string) *Builder {
	b.groups = append(b.groups, Criteria{Key(slot): value})
	return b
}

// Get returns a copy of every group in insertion order, the open one included.
func (b *Builder) Get() []Criteria {
	out := make([]Criteria, 0, len(b.groups))
	for _, g := range b.groups {
		c := make(Criteria, len(g))
		for k, v := range g {
			c[k] = v
		}
		out = append(out, c)
	}
	return out
}

func (b *Builder) current() Criteria {
	if len(b.groups) == 0 {
		b.groups = append(b.groups, Criteria{})
	}
	return b.groups[len(b.groups)-1]
}
