package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

func TestReconcileKeyRename(t *testing.T) {
	oldVal := domain.MappingValue(map[string]domain.Value{
		"hostname": domain.StringValue("x"),
	})
	newVal := domain.MappingValue(map[string]domain.Value{
		"host": domain.StringValue("x"),
	})

	diff := diffValues(oldVal, newVal, domain.DiffOptions{})

	renamed := genericChangesOfType(diff.Changes, domain.KeyRenamed)
	require.Len(t, renamed, 1)
	assert.Equal(t, "hostname", renamed[0].OldKey)
	assert.Equal(t, "host", renamed[0].NewKey)
	assert.Equal(t, "host", renamed[0].Path)

	assert.Zero(t, diff.Counts.KeysAdded)
	assert.Zero(t, diff.Counts.KeysRemoved)
	assert.Equal(t, 1, diff.Counts.KeysRenamed)
}

func TestReconcileRenameRequiresSimilarValues(t *testing.T) {
	oldVal := domain.MappingValue(map[string]domain.Value{
		"hostname": domain.StringValue("alpha beta"),
	})
	newVal := domain.MappingValue(map[string]domain.Value{
		"host": domain.StringValue("gamma delta"),
	})

	diff := diffValues(oldVal, newVal, domain.DiffOptions{})

	assert.Empty(t, genericChangesOfType(diff.Changes, domain.KeyRenamed))
	assert.Equal(t, 1, diff.Counts.KeysAdded)
	assert.Equal(t, 1, diff.Counts.KeysRemoved)
}

func TestReconcileKeyJoinsAtMostOneRename(t *testing.T) {
	// One removed key, two candidate added keys with identical
	// values: only one rename may be committed.
	oldVal := domain.MappingValue(map[string]domain.Value{
		"addr": domain.StringValue("10.0.0.1"),
	})
	newVal := domain.MappingValue(map[string]domain.Value{
		"address":  domain.StringValue("10.0.0.1"),
		"endpoint": domain.StringValue("10.0.0.1"),
	})

	diff := diffValues(oldVal, newVal, domain.DiffOptions{})

	assert.Len(t, genericChangesOfType(diff.Changes, domain.KeyRenamed), 1)
	assert.Equal(t, 1, diff.Counts.KeysAdded)
	assert.Zero(t, diff.Counts.KeysRemoved)
}

func TestReconcileKeyMove(t *testing.T) {
	cfg := domain.MappingValue(map[string]domain.Value{
		"retries": domain.NumberValue(5),
	})
	oldVal := domain.MappingValue(map[string]domain.Value{
		"a": domain.MappingValue(map[string]domain.Value{"cfg": cfg}),
		"b": domain.MappingValue(map[string]domain.Value{}),
	})
	newVal := domain.MappingValue(map[string]domain.Value{
		"a": domain.MappingValue(map[string]domain.Value{}),
		"b": domain.MappingValue(map[string]domain.Value{"cfg": cfg}),
	})

	diff := diffValues(oldVal, newVal, domain.DiffOptions{})

	moved := genericChangesOfType(diff.Changes, domain.KeyMoved)
	require.Len(t, moved, 1)
	assert.Equal(t, "a.cfg", moved[0].OldPath)
	assert.Equal(t, "b.cfg", moved[0].NewPath)

	assert.Zero(t, diff.Counts.KeysAdded)
	assert.Zero(t, diff.Counts.KeysRemoved)
	assert.Equal(t, 1, diff.Counts.KeysMoved)
}

func TestReconcileItemMove(t *testing.T) {
	server := container(map[string]string{"host": "h1.example.org", "zone": "eu"})

	oldVal := domain.MappingValue(map[string]domain.Value{
		"primary": domain.MappingValue(map[string]domain.Value{
			"servers": domain.SequenceValue(server),
		}),
		"standby": domain.MappingValue(map[string]domain.Value{
			"servers": domain.SequenceValue(),
		}),
	})
	newVal := domain.MappingValue(map[string]domain.Value{
		"primary": domain.MappingValue(map[string]domain.Value{
			"servers": domain.SequenceValue(),
		}),
		"standby": domain.MappingValue(map[string]domain.Value{
			"servers": domain.SequenceValue(server),
		}),
	})

	diff := diffValues(oldVal, newVal, domain.DiffOptions{})

	moved := genericChangesOfType(diff.Changes, domain.ItemMoved)
	require.Len(t, moved, 1)
	assert.Equal(t, "primary.servers[0]", moved[0].OldPath)
	assert.Equal(t, "standby.servers[0]", moved[0].NewPath)

	assert.Zero(t, diff.Counts.ItemsAdded)
	assert.Zero(t, diff.Counts.ItemsRemoved)
	assert.Equal(t, 1, diff.Counts.ItemsMoved)
}

func TestReconcileItemMoveRequiresIdentity(t *testing.T) {
	// Elements without a resolvable identity never collapse into a
	// move, even when identical.
	note := domain.StringValue("same text")

	oldVal := domain.MappingValue(map[string]domain.Value{
		"left":  domain.MappingValue(map[string]domain.Value{"notes": domain.SequenceValue(note)}),
		"right": domain.MappingValue(map[string]domain.Value{"notes": domain.SequenceValue()}),
	})
	newVal := domain.MappingValue(map[string]domain.Value{
		"left":  domain.MappingValue(map[string]domain.Value{"notes": domain.SequenceValue()}),
		"right": domain.MappingValue(map[string]domain.Value{"notes": domain.SequenceValue(note)}),
	})

	diff := diffValues(oldVal, newVal, domain.DiffOptions{})

	assert.Empty(t, genericChangesOfType(diff.Changes, domain.ItemMoved))
	assert.Equal(t, 1, diff.Counts.ItemsRemoved)
	assert.Equal(t, 1, diff.Counts.ItemsAdded)
}
