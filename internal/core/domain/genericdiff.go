package domain

// GenericChangeType classifies a change detected by the generic
// path-based pipeline.
type GenericChangeType string

// Generic change types.
const (
	ValueChanged     GenericChangeType = "value_changed"
	TypeChanged      GenericChangeType = "type_changed"
	KeyAdded         GenericChangeType = "key_added"
	KeyRemoved       GenericChangeType = "key_removed"
	KeyRenamed       GenericChangeType = "key_renamed"
	KeyMoved         GenericChangeType = "key_moved"
	ItemAdded        GenericChangeType = "item_added"
	ItemRemoved      GenericChangeType = "item_removed"
	ItemChanged      GenericChangeType = "item_changed"
	ItemMoved        GenericChangeType = "item_moved"
	GenericUnchanged GenericChangeType = "unchanged"
)

// GenericDiffChange is one detected change between two generic values.
type GenericDiffChange struct {
	// Type classifies the change.
	Type GenericChangeType `json:"type"`

	// Path addresses the affected node with dotted keys and bracketed
	// indices, e.g. "spec.containers[2].image".
	Path string `json:"path"`

	// OldPath and NewPath are set on moves (KeyMoved, ItemMoved).
	OldPath string `json:"old_path,omitempty"`
	NewPath string `json:"new_path,omitempty"`

	// OldKey and NewKey are set on renames (KeyRenamed).
	OldKey string `json:"old_key,omitempty"`
	NewKey string `json:"new_key,omitempty"`

	// OldValue and NewValue carry the values when applicable.
	OldValue *Value `json:"old_value,omitempty"`
	NewValue *Value `json:"new_value,omitempty"`
}

// GenericCounts holds one independent counter per change type.
// GenericUnchanged entries are informational and never counted.
type GenericCounts struct {
	ValuesChanged int `json:"values_changed"`
	TypesChanged  int `json:"types_changed"`
	KeysAdded     int `json:"keys_added"`
	KeysRemoved   int `json:"keys_removed"`
	KeysRenamed   int `json:"keys_renamed"`
	KeysMoved     int `json:"keys_moved"`
	ItemsAdded    int `json:"items_added"`
	ItemsRemoved  int `json:"items_removed"`
	ItemsChanged  int `json:"items_changed"`
	ItemsMoved    int `json:"items_moved"`
}

// Total returns the sum of all counters.
func (c GenericCounts) Total() int {
	return c.ValuesChanged + c.TypesChanged +
		c.KeysAdded + c.KeysRemoved + c.KeysRenamed + c.KeysMoved +
		c.ItemsAdded + c.ItemsRemoved + c.ItemsChanged + c.ItemsMoved
}

// GenericDiff is the immutable result of diffing two generic values.
type GenericDiff struct {
	// Changes is the ordered sequence of detected changes.
	Changes []GenericDiffChange `json:"changes"`

	// Counts holds the per-type counters, recomputable via Recount.
	Counts GenericCounts `json:"counts"`
}

// Recount recomputes the counters from the change sequence.
func (d *GenericDiff) Recount() {
	d.Counts = GenericCounts{}
	for _, c := range d.Changes {
		switch c.Type {
		case ValueChanged:
			d.Counts.ValuesChanged++
		case TypeChanged:
			d.Counts.TypesChanged++
		case KeyAdded:
			d.Counts.KeysAdded++
		case KeyRemoved:
			d.Counts.KeysRemoved++
		case KeyRenamed:
			d.Counts.KeysRenamed++
		case KeyMoved:
			d.Counts.KeysMoved++
		case ItemAdded:
			d.Counts.ItemsAdded++
		case ItemRemoved:
			d.Counts.ItemsRemoved++
		case ItemChanged:
			d.Counts.ItemsChanged++
		case ItemMoved:
			d.Counts.ItemsMoved++
		}
	}
}
