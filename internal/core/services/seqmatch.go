package services

import (
	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// autoIdentityFields are probed in order when no identity rule names
// a field for an array's elements.
var autoIdentityFields = []string{"id", "_id", "uuid", "key", "name", "host", "hostname"}

// identKey keys an array element by its resolved identity field and
// the canonical form of the value found there.
type identKey struct {
	field string
	value string
}

// compareSequences matches the elements of two versions of one array
// in four phases. Each element is consumed by at most one phase:
//
//	1: identity-field equality, 1:1, recursing into matched pairs
//	2: best-similarity matching, one full pass per threshold
//	3: positional fallback for exactly-equal elements at the same index
//	4: residual removed/added classification
func (d *genericDiffer) compareSequences(path string, oldSeq, newSeq []domain.Value) int {
	arrayKey := lastPathKey(path)
	start := len(d.changes)

	oldMatched := make([]bool, len(oldSeq))
	newMatched := make([]bool, len(newSeq))

	// Phase 1: identity.
	newByIdent := make(map[identKey][]int)
	for j := range newSeq {
		if k, ok := d.identityKeyOf(arrayKey, newSeq[j]); ok {
			newByIdent[k] = append(newByIdent[k], j)
		}
	}
	for i := range oldSeq {
		k, ok := d.identityKeyOf(arrayKey, oldSeq[i])
		if !ok {
			continue
		}
		j := -1
		for _, cand := range newByIdent[k] {
			if !newMatched[cand] {
				j = cand
				break
			}
		}
		if j < 0 {
			continue
		}
		oldMatched[i], newMatched[j] = true, true
		d.matchedItem(indexPath(path, i), oldSeq[i], newSeq[j], 0)
	}

	// Phase 2: similarity, high threshold then low, as two full
	// sub-passes. Greedy in old order; strict comparison keeps the
	// first-encountered candidate on ties.
	for _, threshold := range []float64{ItemMatchHighThreshold, ItemMatchLowThreshold} {
		for i := range oldSeq {
			if oldMatched[i] {
				continue
			}
			best, bestSim := -1, 0.0
			for j := range newSeq {
				if newMatched[j] {
					continue
				}
				if sim := valueSimilarity(oldSeq[i], newSeq[j]); sim > bestSim {
					best, bestSim = j, sim
				}
			}
			if best < 0 || bestSim < threshold {
				continue
			}
			oldMatched[i], newMatched[best] = true, true
			d.matchedItem(indexPath(path, i), oldSeq[i], newSeq[best], 1.0-bestSim)
		}
	}

	// Phase 3: positional fallback, exact equality only.
	for i := 0; i < len(oldSeq) && i < len(newSeq); i++ {
		if oldMatched[i] || newMatched[i] || !oldSeq[i].Equal(newSeq[i]) {
			continue
		}
		oldMatched[i], newMatched[i] = true, true
		d.append(domain.GenericDiffChange{
			Type:     domain.GenericUnchanged,
			Path:     indexPath(path, i),
			OldValue: valueRef(oldSeq[i]),
			NewValue: valueRef(newSeq[i]),
		})
	}

	// Phase 4: residual.
	for i := range oldSeq {
		if oldMatched[i] {
			continue
		}
		itemPath := indexPath(path, i)
		d.append(domain.GenericDiffChange{
			Type:     domain.ItemRemoved,
			Path:     itemPath,
			OldValue: valueRef(oldSeq[i]),
		})
		d.removedItems = append(d.removedItems, itemRecord{
			path:     itemPath,
			value:    oldSeq[i],
			identity: d.identityValueOf(arrayKey, oldSeq[i]),
		})
	}
	for j := range newSeq {
		if newMatched[j] {
			continue
		}
		itemPath := indexPath(path, j)
		d.append(domain.GenericDiffChange{
			Type:     domain.ItemAdded,
			Path:     itemPath,
			NewValue: valueRef(newSeq[j]),
		})
		d.addedItems = append(d.addedItems, itemRecord{
			path:     itemPath,
			value:    newSeq[j],
			identity: d.identityValueOf(arrayKey, newSeq[j]),
		})
	}

	return d.effectiveSince(start)
}

// matchedItem recurses into a matched element pair at the old
// element's index. When the pair differs (residual dissimilarity or
// nested changes) an item-level change is emitted ahead of the nested
// entries; otherwise the pair is recorded unchanged.
func (d *genericDiffer) matchedItem(itemPath string, oldElem, newElem domain.Value, dissimilarity float64) {
	idx := len(d.changes)
	nested := d.compare(itemPath, oldElem, newElem)

	if nested > 0 || dissimilarity > 0 {
		d.insert(idx, domain.GenericDiffChange{
			Type:     domain.ItemChanged,
			Path:     itemPath,
			OldValue: valueRef(oldElem),
			NewValue: valueRef(newElem),
		})
		return
	}
	d.insert(idx, domain.GenericDiffChange{
		Type:     domain.GenericUnchanged,
		Path:     itemPath,
		OldValue: valueRef(oldElem),
		NewValue: valueRef(newElem),
	})
}

// identityKeyOf resolves the identity field of a mapping-shaped
// element and returns the (field, canonical value) pair keying it.
func (d *genericDiffer) identityKeyOf(arrayKey string, elem domain.Value) (identKey, bool) {
	field, value, ok := d.resolveIdentity(arrayKey, elem)
	if !ok {
		return identKey{}, false
	}
	return identKey{field: field, value: value}, true
}

// identityValueOf returns the canonical identity value of an element,
// or empty when none resolves.
func (d *genericDiffer) identityValueOf(arrayKey string, elem domain.Value) string {
	_, value, ok := d.resolveIdentity(arrayKey, elem)
	if !ok {
		return ""
	}
	return value
}

// resolveIdentity picks the identity field for one element by
// priority: a matching conditional rule, then an unconditional rule
// for the array, then the auto-detect probe list. A rule only applies
// when its identity field is actually present on the element.
func (d *genericDiffer) resolveIdentity(arrayKey string, elem domain.Value) (field, value string, ok bool) {
	if elem.Kind != domain.KindMapping {
		return "", "", false
	}

	for _, rule := range d.opts.Rules {
		if !rule.Conditional() || rule.Array != arrayKey {
			continue
		}
		when, present := elem.Map[rule.WhenField]
		if !present || when.Canonical() != rule.WhenValue {
			continue
		}
		if v, present := elem.Map[rule.IdentityField]; present && v.IsScalar() && v.Kind != domain.KindNull {
			return rule.IdentityField, v.Canonical(), true
		}
	}

	for _, rule := range d.opts.Rules {
		if rule.Conditional() || rule.Array != arrayKey {
			continue
		}
		if v, present := elem.Map[rule.IdentityField]; present && v.IsScalar() && v.Kind != domain.KindNull {
			return rule.IdentityField, v.Canonical(), true
		}
	}

	for _, probe := range autoIdentityFields {
		if v, present := elem.Map[probe]; present && v.IsScalar() && v.Kind != domain.KindNull {
			return probe, v.Canonical(), true
		}
	}
	return "", "", false
}
