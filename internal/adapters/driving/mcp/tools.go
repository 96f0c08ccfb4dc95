package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// DiffValuesInput is the input schema for the diff_values tool.
type DiffValuesInput struct {
	Old   string           `json:"old" jsonschema:"the old version as a YAML document"`
	New   string           `json:"new" jsonschema:"the new version as a YAML document"`
	Rules []DiffValuesRule `json:"rules,omitempty" jsonschema:"identity rules for matching array elements"`
}

// DiffValuesRule mirrors a single identity rule.
type DiffValuesRule struct {
	Array         string `json:"array" jsonschema:"key of the array the rule applies to"`
	IdentityField string `json:"identity_field" jsonschema:"field holding the element identity"`
	WhenField     string `json:"when_field,omitempty" jsonschema:"optional field the condition tests"`
	WhenValue     string `json:"when_value,omitempty" jsonschema:"required value of when_field"`
}

// DiffValuesOutput is the output schema for the diff_values tool.
type DiffValuesOutput struct {
	Changes []GenericChangeOutput `json:"changes"`
	Total   int                   `json:"total"`
}

// GenericChangeOutput represents a single generic diff change.
type GenericChangeOutput struct {
	Type    string `json:"type"`
	Path    string `json:"path,omitempty"`
	OldPath string `json:"old_path,omitempty"`
	NewPath string `json:"new_path,omitempty"`
	OldKey  string `json:"old_key,omitempty"`
	NewKey  string `json:"new_key,omitempty"`
	Old     string `json:"old,omitempty"`
	New     string `json:"new,omitempty"`
}

// DiffDocumentsInput is the input schema for the diff_documents tool.
type DiffDocumentsInput struct {
	Old string `json:"old" jsonschema:"the old outline document as YAML"`
	New string `json:"new" jsonschema:"the new outline document as YAML"`
}

// DiffDocumentsOutput is the output schema for the diff_documents tool.
type DiffDocumentsOutput struct {
	Changes  []DocumentChangeOutput `json:"changes"`
	Added    int                    `json:"added"`
	Removed  int                    `json:"removed"`
	Modified int                    `json:"modified"`
	Moved    int                    `json:"moved"`
}

// DocumentChangeOutput represents a single document diff change.
type DocumentChangeOutput struct {
	Type     string `json:"type"`
	Marker   string `json:"marker"`
	OldPath  string `json:"old_path,omitempty"`
	NewPath  string `json:"new_path,omitempty"`
	OldTitle string `json:"old_title,omitempty"`
	NewTitle string `json:"new_title,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "diff_values",
		Description: "Structurally compare two YAML data documents and report changes by path",
	}, s.handleDiffValues)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "diff_documents",
		Description: "Compare two marker-structured outline documents and report section changes",
	}, s.handleDiffDocuments)
}

// handleDiffValues handles the diff_values tool invocation.
func (s *Server) handleDiffValues(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DiffValuesInput,
) (*mcp.CallToolResult, DiffValuesOutput, error) {
	oldValue, err := s.ports.ValueLoader.LoadValue([]byte(input.Old))
	if err != nil {
		return nil, DiffValuesOutput{}, fmt.Errorf("parsing old document: %w", err)
	}
	newValue, err := s.ports.ValueLoader.LoadValue([]byte(input.New))
	if err != nil {
		return nil, DiffValuesOutput{}, fmt.Errorf("parsing new document: %w", err)
	}

	opts := domain.DiffOptions{Rules: s.effectiveRules(input.Rules)}
	diff := s.ports.Diff.DiffValues(oldValue, newValue, opts)

	output := DiffValuesOutput{Total: diff.Counts.Total()}
	for _, c := range diff.Changes {
		if c.Type == domain.GenericUnchanged {
			continue
		}
		out := GenericChangeOutput{
			Type:    string(c.Type),
			Path:    c.Path,
			OldPath: c.OldPath,
			NewPath: c.NewPath,
			OldKey:  c.OldKey,
			NewKey:  c.NewKey,
		}
		if c.OldValue != nil {
			out.Old = c.OldValue.Canonical()
		}
		if c.NewValue != nil {
			out.New = c.NewValue.Canonical()
		}
		output.Changes = append(output.Changes, out)
	}

	return nil, output, nil
}

// handleDiffDocuments handles the diff_documents tool invocation.
func (s *Server) handleDiffDocuments(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DiffDocumentsInput,
) (*mcp.CallToolResult, DiffDocumentsOutput, error) {
	oldDoc, err := s.ports.DocLoader.LoadDocument([]byte(input.Old))
	if err != nil {
		return nil, DiffDocumentsOutput{}, fmt.Errorf("parsing old document: %w", err)
	}
	newDoc, err := s.ports.DocLoader.LoadDocument([]byte(input.New))
	if err != nil {
		return nil, DiffDocumentsOutput{}, fmt.Errorf("parsing new document: %w", err)
	}

	diff, err := s.ports.Diff.DiffDocuments(oldDoc, newDoc)
	if err != nil {
		return nil, DiffDocumentsOutput{}, err
	}

	output := DiffDocumentsOutput{
		Added:    diff.Added,
		Removed:  diff.Removed,
		Modified: diff.Modified,
		Moved:    diff.Moved,
	}
	for _, c := range diff.Changes {
		if c.Type == domain.Unchanged {
			continue
		}
		output.Changes = append(output.Changes, DocumentChangeOutput{
			Type:     string(c.Type),
			Marker:   c.Marker,
			OldPath:  c.OldPath,
			NewPath:  c.NewPath,
			OldTitle: c.OldTitle,
			NewTitle: c.NewTitle,
		})
	}

	return nil, output, nil
}

// effectiveRules merges request rules with configured defaults.
// Request rules take priority.
func (s *Server) effectiveRules(reqRules []DiffValuesRule) []domain.IdentityRule {
	rules := make([]domain.IdentityRule, 0, len(reqRules))
	for _, r := range reqRules {
		rules = append(rules, domain.IdentityRule{
			Array:         r.Array,
			IdentityField: r.IdentityField,
			WhenField:     r.WhenField,
			WhenValue:     r.WhenValue,
		})
	}
	if s.ports.Rules != nil {
		if stored, err := s.ports.Rules.Rules(); err == nil {
			rules = append(rules, stored...)
		}
	}
	return rules
}
