package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

var (
	diffIdentity []string
	diffJSON     bool
	diffLines    bool
	diffNoColor  bool
	diffNoRecord bool
)

var diffCmd = &cobra.Command{
	Use:   "diff [old] [new]",
	Short: "Compare two data files structurally",
	Long: `Compares two tree-shaped data files (YAML) and reports changes by
path: values changed, keys added, removed, renamed or moved, and array
items matched by identity, similarity or position.

Identity rules tell the matcher which field identifies "the same"
element of a named array, e.g. --identity servers=host. A rule may be
conditional: --identity "rules=id,kind=firewall" applies only to
elements whose kind equals firewall.

Inputs may be file paths or http(s) URLs.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringArrayVar(&diffIdentity, "identity", nil, "identity rule array=field[,whenField=whenValue] (repeatable)")
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "output the diff as JSON")
	diffCmd.Flags().BoolVar(&diffLines, "lines", false, "annotate changes with line numbers in the new file")
	diffCmd.Flags().BoolVar(&diffNoColor, "no-color", false, "disable coloured output")
	diffCmd.Flags().BoolVar(&diffNoRecord, "no-record", false, "do not record this run in history")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	if diffService == nil || valueLoader == nil {
		return errors.New("diff service not configured")
	}

	oldSource, newSource := args[0], args[1]
	ctx := cmd.Context()

	oldData, err := readSource(ctx, oldSource)
	if err != nil {
		return err
	}
	newData, err := readSource(ctx, newSource)
	if err != nil {
		return err
	}

	oldValue, err := valueLoader.LoadValue(oldData)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", oldSource, err)
	}
	newValue, err := valueLoader.LoadValue(newData)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", newSource, err)
	}

	flagRules, err := parseIdentityFlags(diffIdentity)
	if err != nil {
		return err
	}
	opts := domain.DiffOptions{Rules: effectiveRules(flagRules)}

	diff := diffService.DiffValues(oldValue, newValue, opts)

	renderer := pickRenderer(diffJSON, diffNoColor)
	out, err := renderer.RenderGenericDiff(diff)
	if err != nil {
		return err
	}
	cmd.Print(out)

	if diffLines && !diffJSON {
		cmd.Print(genericLineAnnotations(diff, oldData, newData))
	}

	recordRun(ctx, domain.DiffRun{
		ID:        uuid.New().String(),
		Kind:      domain.RunKindGeneric,
		OldSource: oldSource,
		NewSource: newSource,
		Changes:   diff.Counts.Total(),
		RanAt:     time.Now().UTC(),
	}, diffNoRecord)

	return nil
}

// genericLineAnnotations maps changed paths back to source lines.
// Removals resolve against the old file, everything else against the
// new one.
func genericLineAnnotations(diff *domain.GenericDiff, oldData, newData []byte) string {
	if lineResolver == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nLines:\n")
	for _, c := range diff.Changes {
		if c.Type == domain.GenericUnchanged {
			continue
		}
		path := c.Path
		data := newData
		if c.Type == domain.KeyRemoved || c.Type == domain.ItemRemoved {
			data = oldData
		}
		if path == "" {
			continue
		}
		if line := lineResolver.Resolve(data, path); line > 0 {
			fmt.Fprintf(&b, "  %s: line %d\n", path, line)
		}
	}
	return b.String()
}

// recordRun stores a run summary; history is best-effort and never
// fails the diff.
func recordRun(ctx context.Context, run domain.DiffRun, skip bool) {
	if skip || historyStore == nil {
		return
	}
	_ = historyStore.Record(ctx, run)
}
