// Package style builds the site's style sheet once at startup and hands the
// result to the HTTP layer as an immutable resource.
package style

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Rule is a selector with its declarations. Nested rules are only rendered
// for at-rules such as @media.
type Rule struct {
	Selector     string
	Declarations []string
	Nested       []Rule
}

// Builder accumulates rules in insertion order.
type Builder struct {
	rules []Rule
}

// AddRule appends a rule. Declarations are written without a trailing semicolon.
func (b *Builder) AddRule(selector string, declarations ...string) *Builder {
	b.rules = append(b.rules, Rule{Selector: selector, Declarations: declarations})
	return b
}

// AddMedia appends an at-rule whose body is built by fn.
func (b *Builder) AddMedia(query string, fn func(*Builder)) *Builder {
	var inner Builder
	fn(&inner)
	b.rules = append(b.rules, Rule{Selector: "@media " + query, Nested: inner.rules})
	return b
}

// Len returns the number of top-level rules added so far.
func (b *Builder) Len() int {
	return len(b.rules)
}

// Build renders the accumulated rules into a Sheet.
func (b *Builder) Build() *Sheet {
	var sb strings.Builder
	for _, r := range b.rules {
		writeRule(&sb, r, "")
	}
	css := []byte(sb.String())
	sum := sha256.Sum256(css)
	return &Sheet{
		css:   css,
		etag:  `"` + hex.EncodeToString(sum[:8]) + `"`,
		rules: len(b.rules),
	}
}

func writeRule(sb *strings.Builder, r Rule, indent string) {
	sb.WriteString(indent)
	sb.WriteString(r.Selector)
	sb.WriteString(" {\n")
	for _, n := range r.Nested {
		writeRule(sb, n, indent+"  ")
	}
	for _, d := range r.Declarations {
		sb.WriteString(indent)
		sb.WriteString("  ")
		sb.WriteString(strings.TrimSuffix(strings.TrimSpace(d), ";"))
		sb.WriteString(";\n")
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

// Sheet is a rendered style sheet. It never changes after Build.
type Sheet struct {
	css   []byte
	etag  string
	rules int
}

// CSS returns a copy of the rendered style sheet.
func (s *Sheet) CSS() []byte {
	out := make([]byte, len(s.css))
	copy(out, s.css)
	return out
}

// ETag is a strong entity tag derived from the content.
func (s *Sheet) ETag() string {
	return s.etag
}

// Rules returns the number of top-level rules.
func (s *Sheet) Rules() int {
	return s.rules
}

// Default builds the site's sheet: the design system followed by the theme.
func Default() *Sheet {
	var b Builder
	DesignSystem(&b)
	Theme(&b)
	return b.Build()
}
