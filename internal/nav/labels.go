// Package nav provides the navigation state of a disassembly session, the
// assigned labels, bank assignments and the visit history.
package nav

import (
	"fmt"
	"sort"
)

// Label names an image offset.
type Label struct {
	Offset int
	Name   string
}

// Labels tracks named offsets.
type Labels struct {
	names map[int]string
}

// NewLabels creates a new label manager.
func NewLabels() *Labels {
	return &Labels{
		names: make(map[int]string),
	}
}

// Set assigns a name to the offset, replacing any existing name.
func (l *Labels) Set(offset int, name string) {
	l.names[offset] = name
}

// For returns the name assigned to the offset.
func (l *Labels) For(offset int) (string, bool) {
	name, ok := l.names[offset]
	return name, ok
}

// Has returns whether the offset has a name assigned.
func (l *Labels) Has(offset int) bool {
	_, ok := l.names[offset]
	return ok
}

// EnsureDefault assigns a generated name to the offset if it does not have
// one yet. Names assigned by the user are never replaced.
func (l *Labels) EnsureDefault(offset int) {
	if _, ok := l.names[offset]; ok {
		return
	}
	l.names[offset] = fmt.Sprintf("LOC_%06X", offset)
}

// Len returns the number of assigned labels.
func (l *Labels) Len() int {
	return len(l.names)
}

// Sorted returns all labels ordered by offset.
func (l *Labels) Sorted() []Label {
	labels := make([]Label, 0, len(l.names))
	for offset, name := range l.names {
		labels = append(labels, Label{Offset: offset, Name: name})
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i].Offset < labels[j].Offset
	})
	return labels
}
