package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure TextRenderer implements the interface.
var _ driven.DiffRenderer = (*TextRenderer)(nil)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	movedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// TextRenderer formats diffs as line-oriented terminal output with
// optional colour.
type TextRenderer struct {
	color bool
}

// NewTextRenderer creates a text renderer. Colour is applied only
// when enabled.
func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{color: color}
}

func (r *TextRenderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// RenderDocumentDiff formats a document diff. Unchanged entries are
// omitted.
func (r *TextRenderer) RenderDocumentDiff(diff *domain.DocumentDiff) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%d added, %d removed, %d modified, %d moved\n",
		diff.Added, diff.Removed, diff.Modified, diff.Moved)

	for _, c := range diff.Changes {
		switch c.Type {
		case domain.SectionAdded:
			fmt.Fprintln(&b, r.paint(addedStyle, "+ "+c.NewPath))
		case domain.SectionRemoved:
			fmt.Fprintln(&b, r.paint(removedStyle, "- "+c.OldPath))
		case domain.SectionMoved:
			fmt.Fprintln(&b, r.paint(movedStyle, fmt.Sprintf("> %s -> %s", c.OldPath, c.NewPath)))
		case domain.ContentChanged:
			fmt.Fprintln(&b, r.paint(changedStyle, "~ "+c.NewPath+" (content)"))
		case domain.TitleChanged:
			fmt.Fprintln(&b, r.paint(changedStyle, "~ "+c.NewPath+" (title)"))
		}
	}
	return b.String(), nil
}

// RenderGenericDiff formats a generic diff. Unchanged entries are
// omitted.
func (r *TextRenderer) RenderGenericDiff(diff *domain.GenericDiff) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%d changes\n", diff.Counts.Total())

	for _, c := range diff.Changes {
		switch c.Type {
		case domain.KeyAdded, domain.ItemAdded:
			fmt.Fprintln(&b, r.paint(addedStyle, "+ "+c.Path))
		case domain.KeyRemoved, domain.ItemRemoved:
			fmt.Fprintln(&b, r.paint(removedStyle, "- "+c.Path))
		case domain.ValueChanged:
			fmt.Fprintln(&b, r.paint(changedStyle,
				fmt.Sprintf("~ %s: %s -> %s", c.Path, c.OldValue.Canonical(), c.NewValue.Canonical())))
		case domain.TypeChanged:
			fmt.Fprintln(&b, r.paint(changedStyle,
				fmt.Sprintf("~ %s: %s -> %s", c.Path, c.OldValue.Kind, c.NewValue.Kind)))
		case domain.ItemChanged:
			fmt.Fprintln(&b, r.paint(changedStyle, "~ "+c.Path))
		case domain.KeyRenamed:
			fmt.Fprintln(&b, r.paint(movedStyle,
				fmt.Sprintf("> %s: %s -> %s", c.Path, c.OldKey, c.NewKey)))
		case domain.KeyMoved, domain.ItemMoved:
			fmt.Fprintln(&b, r.paint(movedStyle,
				fmt.Sprintf("> %s -> %s", c.OldPath, c.NewPath)))
		}
	}
	return b.String(), nil
}
