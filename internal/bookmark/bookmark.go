// Package bookmark defines the bookmark record and the rules that keep a
// bookmark collection sorted and free of duplicate names.
package bookmark

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Bookmark is a named offset. Two bookmarks are the same record when their
// names match; the offset only determines ordering.
type Bookmark struct {
	Name   string  `yaml:"name"`
	Offset float64 `yaml:"offset"`
}

// New creates a Bookmark.
func New(name string, offset float64) Bookmark {
	return Bookmark{Name: name, Offset: offset}
}

// String returns the one-line form written by the CLI, e.g.
// Bookmark { name: "alpha", offset: 3.5 }.
func (b Bookmark) String() string {
	return fmt.Sprintf("Bookmark { name: %q, offset: %s }", b.Name, FormatOffset(b.Offset))
}

// FormatOffset formats an offset so that whole numbers keep a trailing ".0"
// and non-finite values read as NaN, inf and -inf.
func FormatOffset(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Index returns the position of the first bookmark named name, or -1.
func Index(list []Bookmark, name string) int {
	return slices.IndexFunc(list, func(b Bookmark) bool { return b.Name == name })
}

// Find returns the first bookmark named name.
func Find(list []Bookmark, name string) (Bookmark, bool) {
	i := Index(list, name)
	if i < 0 {
		return Bookmark{}, false
	}
	return list[i], true
}

// Upsert sets the offset of the first bookmark named name, appending a new
// one if none exists, then sorts and deduplicates the collection.
//
// Sorting happens before deduplication, so if list already held two entries
// with the same name the survivor is the one with the lower offset, which
// is not necessarily the one just updated.
func Upsert(list []Bookmark, name string, offset float64) []Bookmark {
	if i := Index(list, name); i >= 0 {
		list[i].Offset = offset
	} else {
		list = append(list, New(name, offset))
	}
	Sort(list)
	return Dedup(list)
}

// Remove deletes the first bookmark named name and returns it. The returned
// slice is list itself when nothing matched.
func Remove(list []Bookmark, name string) ([]Bookmark, Bookmark, bool) {
	i := Index(list, name)
	if i < 0 {
		return list, Bookmark{}, false
	}
	removed := list[i]
	return slices.Delete(list, i, i+1), removed, true
}

// Sort orders the collection by ascending offset. The sort is stable and
// NaN compares equal to everything.
func Sort(list []Bookmark) {
	slices.SortStableFunc(list, compareOffset)
}

func compareOffset(a, b Bookmark) int {
	switch {
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	}
	return 0
}

// Dedup drops every bookmark whose name was already seen earlier in list.
// It works in place and returns the shortened slice.
func Dedup(list []Bookmark) []Bookmark {
	seen := make(map[string]struct{}, len(list))
	out := list[:0]
	for _, b := range list {
		if _, ok := seen[b.Name]; ok {
			continue
		}
		seen[b.Name] = struct{}{}
		out = append(out, b)
	}
	return out
}

// IsSorted reports whether list is in ascending offset order.
func IsSorted(list []Bookmark) bool {
	return slices.IsSortedFunc(list, compareOffset)
}
