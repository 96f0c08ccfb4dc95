package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// Accumulator records feeding the global reconciliation pass. Each
// top-level generic diff call owns a fresh set; no state survives a
// call.
type keyRecord struct {
	parentPath string
	key        string
	value      domain.Value
}

type itemRecord struct {
	path     string
	value    domain.Value
	identity string
}

// genericDiffer carries the state of one generic diff call: the
// options, the ordered change list under construction, and the
// removed/added accumulators for reconciliation.
type genericDiffer struct {
	opts    domain.DiffOptions
	changes []domain.GenericDiffChange

	removedKeys  []keyRecord
	addedKeys    []keyRecord
	removedItems []itemRecord
	addedItems   []itemRecord
}

// diffValues runs the path-based pipeline: full recursion, then the
// global reconciliation pass, then counts. It never fails on
// well-typed inputs; shape mismatches are reported as data.
func diffValues(oldVal, newVal domain.Value, opts domain.DiffOptions) *domain.GenericDiff {
	d := &genericDiffer{opts: opts}
	d.compare("", oldVal, newVal)
	d.reconcile()

	diff := &domain.GenericDiff{Changes: d.changes}
	diff.Recount()
	return diff
}

// compare diffs two values at the given path and returns the number
// of effective (non-unchanged) changes emitted for the subtree.
func (d *genericDiffer) compare(path string, oldVal, newVal domain.Value) int {
	if oldVal.Kind != newVal.Kind {
		// Shape mismatch, including scalar subtype mismatches. No
		// recursion: the whole subtree is reported as one change.
		d.append(domain.GenericDiffChange{
			Type:     domain.TypeChanged,
			Path:     path,
			OldValue: valueRef(oldVal),
			NewValue: valueRef(newVal),
		})
		return 1
	}

	switch oldVal.Kind {
	case domain.KindMapping:
		return d.compareMappings(path, oldVal.Map, newVal.Map)
	case domain.KindSequence:
		return d.compareSequences(path, oldVal.Seq, newVal.Seq)
	default:
		if oldVal.Equal(newVal) {
			d.append(domain.GenericDiffChange{
				Type:     domain.GenericUnchanged,
				Path:     path,
				OldValue: valueRef(oldVal),
				NewValue: valueRef(newVal),
			})
			return 0
		}
		d.append(domain.GenericDiffChange{
			Type:     domain.ValueChanged,
			Path:     path,
			OldValue: valueRef(oldVal),
			NewValue: valueRef(newVal),
		})
		return 1
	}
}

// compareMappings diffs two mappings over the union of their keys.
// Keys are visited in sorted order so output is deterministic.
func (d *genericDiffer) compareMappings(path string, oldMap, newMap map[string]domain.Value) int {
	keys := make([]string, 0, len(oldMap)+len(newMap))
	for k := range oldMap {
		keys = append(keys, k)
	}
	for k := range newMap {
		if _, shared := oldMap[k]; !shared {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	effective := 0
	for _, k := range keys {
		oldEntry, inOld := oldMap[k]
		newEntry, inNew := newMap[k]
		keyPath := joinPath(path, k)

		switch {
		case inOld && inNew:
			effective += d.compare(keyPath, oldEntry, newEntry)
		case inNew:
			d.append(domain.GenericDiffChange{
				Type:     domain.KeyAdded,
				Path:     keyPath,
				NewValue: valueRef(newEntry),
			})
			d.addedKeys = append(d.addedKeys, keyRecord{parentPath: path, key: k, value: newEntry})
			effective++
		default:
			d.append(domain.GenericDiffChange{
				Type:     domain.KeyRemoved,
				Path:     keyPath,
				OldValue: valueRef(oldEntry),
			})
			d.removedKeys = append(d.removedKeys, keyRecord{parentPath: path, key: k, value: oldEntry})
			effective++
		}
	}
	return effective
}

func (d *genericDiffer) append(ch domain.GenericDiffChange) {
	d.changes = append(d.changes, ch)
}

// insert places a change at position idx, shifting later entries.
// Used to put an item-level change ahead of its nested changes.
func (d *genericDiffer) insert(idx int, ch domain.GenericDiffChange) {
	d.changes = append(d.changes, domain.GenericDiffChange{})
	copy(d.changes[idx+1:], d.changes[idx:])
	d.changes[idx] = ch
}

// effectiveSince counts non-unchanged entries appended at or after
// start.
func (d *genericDiffer) effectiveSince(start int) int {
	n := 0
	for _, ch := range d.changes[start:] {
		if ch.Type != domain.GenericUnchanged {
			n++
		}
	}
	return n
}

// valueRef copies a value onto the heap for inclusion in a change
// entry, so entries never alias caller-owned data.
func valueRef(v domain.Value) *domain.Value {
	c := v
	return &c
}

// joinPath appends a mapping key to a dotted path.
func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// indexPath appends a bracketed sequence index to a path.
func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

// lastPathKey returns the trailing mapping key of a path, with any
// bracketed indices stripped: "spec.containers[2]" yields
// "containers". Empty for index-only or empty paths.
func lastPathKey(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.Index(path, "["); i >= 0 {
		path = path[:i]
	}
	return path
}
