package services

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// reconcile runs once after the full recursion and collapses
// independently-detected removed/added pairs into rename and move
// changes:
//
//   - key rename: removed/added keys under the same parent whose
//     values are similar enough
//   - key move: a same-named key removed at one parent and added at
//     another, values similar enough
//   - item move: removed/added array elements sharing an identity
//     value at different paths
//
// All three passes are first-found, not globally optimal: once a pair
// is committed it is never revisited.
func (d *genericDiffer) reconcile() {
	if len(d.removedKeys)+len(d.removedItems) == 0 || len(d.addedKeys)+len(d.addedItems) == 0 {
		return
	}

	replace := make(map[int]domain.GenericDiffChange)
	drop := make(map[int]bool)

	removedConsumed := make([]bool, len(d.removedKeys))
	addedConsumed := make([]bool, len(d.addedKeys))

	// Key renames within one parent.
	for ri := range d.removedKeys {
		rk := &d.removedKeys[ri]
		for ai := range d.addedKeys {
			ak := &d.addedKeys[ai]
			if addedConsumed[ai] || rk.parentPath != ak.parentPath || rk.key == ak.key {
				continue
			}
			if valueSimilarity(rk.value, ak.value) < KeyRenameThreshold {
				continue
			}
			removedConsumed[ri], addedConsumed[ai] = true, true

			removedIdx := d.locate(domain.KeyRemoved, joinPath(rk.parentPath, rk.key))
			addedIdx := d.locate(domain.KeyAdded, joinPath(ak.parentPath, ak.key))
			if removedIdx < 0 || addedIdx < 0 {
				break
			}
			replace[removedIdx] = domain.GenericDiffChange{
				Type:     domain.KeyRenamed,
				Path:     joinPath(ak.parentPath, ak.key),
				OldKey:   rk.key,
				NewKey:   ak.key,
				OldValue: valueRef(rk.value),
				NewValue: valueRef(ak.value),
			}
			drop[addedIdx] = true
			break
		}
	}

	// Key moves across parents.
	for ri := range d.removedKeys {
		if removedConsumed[ri] {
			continue
		}
		rk := &d.removedKeys[ri]
		for ai := range d.addedKeys {
			ak := &d.addedKeys[ai]
			if addedConsumed[ai] || rk.key != ak.key || rk.parentPath == ak.parentPath {
				continue
			}
			if valueSimilarity(rk.value, ak.value) < KeyRenameThreshold {
				continue
			}
			removedConsumed[ri], addedConsumed[ai] = true, true

			oldPath := joinPath(rk.parentPath, rk.key)
			newPath := joinPath(ak.parentPath, ak.key)
			removedIdx := d.locate(domain.KeyRemoved, oldPath)
			addedIdx := d.locate(domain.KeyAdded, newPath)
			if removedIdx < 0 || addedIdx < 0 {
				break
			}
			replace[removedIdx] = domain.GenericDiffChange{
				Type:     domain.KeyMoved,
				Path:     newPath,
				OldPath:  oldPath,
				NewPath:  newPath,
				OldValue: valueRef(rk.value),
				NewValue: valueRef(ak.value),
			}
			drop[addedIdx] = true
			break
		}
	}

	// Item moves by shared identity.
	addedItemConsumed := make([]bool, len(d.addedItems))
	for ri := range d.removedItems {
		rit := &d.removedItems[ri]
		if rit.identity == "" {
			continue
		}
		for ai := range d.addedItems {
			ait := &d.addedItems[ai]
			if addedItemConsumed[ai] || ait.identity != rit.identity || ait.path == rit.path {
				continue
			}
			addedItemConsumed[ai] = true

			removedIdx := d.locate(domain.ItemRemoved, rit.path)
			addedIdx := d.locate(domain.ItemAdded, ait.path)
			if removedIdx < 0 || addedIdx < 0 {
				break
			}
			replace[removedIdx] = domain.GenericDiffChange{
				Type:     domain.ItemMoved,
				Path:     ait.path,
				OldPath:  rit.path,
				NewPath:  ait.path,
				OldValue: valueRef(rit.value),
				NewValue: valueRef(ait.value),
			}
			drop[addedIdx] = true
			break
		}
	}

	if len(replace) == 0 && len(drop) == 0 {
		return
	}

	out := make([]domain.GenericDiffChange, 0, len(d.changes))
	for i, ch := range d.changes {
		if drop[i] {
			continue
		}
		if repl, ok := replace[i]; ok {
			out = append(out, repl)
			continue
		}
		out = append(out, ch)
	}
	d.changes = out
}

// locate finds the index of the change with the given type and path.
// Paths are unique per change type, so the first hit is the entry.
func (d *genericDiffer) locate(t domain.GenericChangeType, path string) int {
	for i := range d.changes {
		if d.changes[i].Type == t && d.changes[i].Path == path {
			return i
		}
	}
	return -1
}
