// Package document provides ordering operations over resume collections:
// stable section sorting, visibility filtering, and order re-indexing after
// reorder or delete mutations.
package document

import (
	"sort"

	"github.com/jonathan/resume-builder/internal/types"
)

// SortSections returns a copy of sections sorted by ascending Order.
// The sort is stable: ties keep their original array position.
func SortSections(sections []types.SectionSetting) []types.SectionSetting {
	sorted := make([]types.SectionSetting, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// VisibleSections returns the sections that should render, sorted by
// ascending Order with invisible sections filtered out.
func VisibleSections(sections []types.SectionSetting) []types.SectionSetting {
	visible := make([]types.SectionSetting, 0, len(sections))
	for _, s := range SortSections(sections) {
		if s.Visible {
			visible = append(visible, s)
		}
	}
	return visible
}

// Reindex rewrites Order on every element to its array index, so orders are
// 0-based and contiguous with no gaps or duplicates. Called after every
// move or remove; idempotent.
func Reindex[T any](entries []T, withOrder func(T, int) T) []T {
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = withOrder(e, i)
	}
	return out
}

// Move relocates the element at index from to index to and re-indexes.
// Out-of-range indices return the input unchanged.
func Move[T any](entries []T, from, to int, withOrder func(T, int) T) []T {
	if from < 0 || from >= len(entries) || to < 0 || to >= len(entries) {
		return entries
	}
	out := make([]T, 0, len(entries))
	out = append(out, entries[:from]...)
	out = append(out, entries[from+1:]...)

	moved := entries[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return Reindex(out, withOrder)
}

// Remove deletes the element at index and re-indexes. An out-of-range index
// returns the input unchanged.
func Remove[T any](entries []T, index int, withOrder func(T, int) T) []T {
	if index < 0 || index >= len(entries) {
		return entries
	}
	out := make([]T, 0, len(entries)-1)
	out = append(out, entries[:index]...)
	out = append(out, entries[index+1:]...)
	return Reindex(out, withOrder)
}

// SortByOrder returns a stable ascending-order copy of any ordered slice.
func SortByOrder[T any](entries []T, order func(T) int) []T {
	sorted := make([]T, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return order(sorted[i]) < order(sorted[j])
	})
	return sorted
}
