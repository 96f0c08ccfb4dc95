package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/noamoss/yamly-sub000/internal/adapters/driven/render"
	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// isURL reports whether source should be fetched rather than read
// from disk.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// readSource loads the bytes of a file path or URL.
func readSource(ctx context.Context, source string) ([]byte, error) {
	if isURL(source) {
		if fetcher == nil {
			return nil, errors.New("fetcher not configured")
		}
		return fetcher.Fetch(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}

// colorEnabled decides whether to colour output: an explicit
// --no-color wins, otherwise colour is used only on a terminal.
func colorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// parseIdentityFlags parses --identity values of the form
// "array=field" or "array=field,whenField=whenValue".
func parseIdentityFlags(specs []string) ([]domain.IdentityRule, error) {
	var rules []domain.IdentityRule
	for _, spec := range specs {
		parts := strings.SplitN(spec, ",", 2)

		array, field, ok := strings.Cut(parts[0], "=")
		if !ok || array == "" || field == "" {
			return nil, fmt.Errorf("invalid identity rule %q: want array=field", spec)
		}
		rule := domain.IdentityRule{Array: array, IdentityField: field}

		if len(parts) == 2 {
			whenField, whenValue, ok := strings.Cut(parts[1], "=")
			if !ok || whenField == "" {
				return nil, fmt.Errorf("invalid identity rule condition %q: want whenField=whenValue", spec)
			}
			rule.WhenField = whenField
			rule.WhenValue = whenValue
		}

		rules = append(rules, rule)
	}
	return rules, nil
}

// effectiveRules merges configured default rules with command-line
// rules. Command-line rules take priority.
func effectiveRules(flagRules []domain.IdentityRule) []domain.IdentityRule {
	if ruleStore == nil {
		return flagRules
	}
	stored, err := ruleStore.Rules()
	if err != nil {
		return flagRules
	}
	return append(flagRules, stored...)
}

// pickRenderer chooses JSON or coloured text rendering.
func pickRenderer(asJSON, noColor bool) driven.DiffRenderer {
	if asJSON {
		return render.NewJSONRenderer()
	}
	return render.NewTextRenderer(colorEnabled(noColor))
}
