// Package bench implements the partition-preload-measure benchmark
// runner shared by every list and map synchronization strategy.
package bench

import (
	"github.com/oslab-cc/collex/pkg/collist"
	"github.com/oslab-cc/collex/pkg/colmap"
)

// target is the minimal capability the measurement loop needs, small
// enough that both a collist.Set[uint64] and a colmap.Map[uint64, uint64]
// can satisfy it through the adapters below.
type target interface {
	insert(v uint64) bool
	insertUnique(v uint64) bool
	remove(v uint64) bool
	contains(v uint64) bool
}

type listTarget struct{ s collist.Set[uint64] }

func (t listTarget) insert(v uint64) bool       { return t.s.Insert(v) }
func (t listTarget) insertUnique(v uint64) bool { return t.s.InsertUnique(v) }
func (t listTarget) remove(v uint64) bool       { return t.s.Remove(v) }
func (t listTarget) contains(v uint64) bool     { return t.s.Contains(v) }

type mapTarget struct{ m colmap.Map[uint64, uint64] }

func (t mapTarget) insert(v uint64) bool       { return t.m.Insert(v, v) }
func (t mapTarget) insertUnique(v uint64) bool { return t.m.Insert(v, v) }
func (t mapTarget) remove(v uint64) bool       { return t.m.Remove(v) }
func (t mapTarget) contains(v uint64) bool     { return t.m.Has(v) }

// ListFactory adapts a collist.Set[uint64] builder for use with
// Runner.Run/RunSingle. target is unexported, so callers outside this
// package cannot name a "func() target" literal directly; they build one
// through this factory instead.
func ListFactory(build func() collist.Set[uint64]) func() target {
	return func() target { return listTarget{s: build()} }
}

// MapFactory adapts a colmap.Map[uint64, uint64] builder the same way.
// Map variants never alternate Insert/InsertUnique the way lists do: every
// insert-shaped operation uses Insert, matching the rule that map
// variants always insert rather than insert-unique.
func MapFactory(build func() colmap.Map[uint64, uint64]) func() target {
	return func() target { return mapTarget{m: build()} }
}
