// Package linemap maps generic diff paths back to line numbers in the
// serialized YAML source. Resolution is best-effort and never affects
// diff correctness: unknown paths simply resolve to 0.
package linemap

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.LineResolver = (*Resolver)(nil)

// Resolver walks the YAML node tree along a dotted/bracketed path.
type Resolver struct{}

// NewResolver creates a new line resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the 1-based line of the node addressed by path, or
// 0 when the source does not parse or the path cannot be located.
func (r *Resolver) Resolve(data []byte, path string) int {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return 0
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return 0
		}
		node = node.Content[0]
	}

	for _, seg := range splitPath(path) {
		if node == nil {
			return 0
		}
		if seg.index >= 0 {
			if node.Kind != yaml.SequenceNode || seg.index >= len(node.Content) {
				return 0
			}
			node = node.Content[seg.index]
			continue
		}
		node = mappingEntry(node, seg.key)
	}

	if node == nil {
		return 0
	}
	return node.Line
}

// segment is one path step: a mapping key, or a sequence index when
// index is non-negative.
type segment struct {
	key   string
	index int
}

// splitPath breaks "a.b[2].c" into its key and index segments.
func splitPath(path string) []segment {
	var segs []segment
	for _, part := range strings.Split(path, ".") {
		for {
			open := strings.Index(part, "[")
			if open < 0 {
				break
			}
			if open > 0 {
				segs = append(segs, segment{key: part[:open], index: -1})
			}
			closing := strings.Index(part, "]")
			if closing < open {
				return segs
			}
			idx, err := strconv.Atoi(part[open+1 : closing])
			if err != nil {
				return segs
			}
			segs = append(segs, segment{index: idx})
			part = part[closing+1:]
		}
		if part != "" {
			segs = append(segs, segment{key: part, index: -1})
		}
	}
	return segs
}

// mappingEntry returns the value node for a key, or nil.
func mappingEntry(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
