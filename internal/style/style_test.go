package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	var b Builder
	b.AddRule(".a", "color: red;", " margin: 0 ").
		AddMedia("(max-width: 10px)", func(m *Builder) {
			m.AddRule(".a", "color: blue")
		})
	require.Equal(t, 2, b.Len())

	sheet := b.Build()

	want := ".a {\n  color: red;\n  margin: 0;\n}\n" +
		"@media (max-width: 10px) {\n  .a {\n    color: blue;\n  }\n}\n"
	assert.Equal(t, want, string(sheet.CSS()))
	assert.Equal(t, 2, sheet.Rules())
}

func TestSheet_IsImmutable(t *testing.T) {
	var b Builder
	b.AddRule(".a", "color: red")
	sheet := b.Build()
	etag := sheet.ETag()

	css := sheet.CSS()
	css[0] = 'X'
	b.AddRule(".b", "color: green")

	assert.Equal(t, ".a {\n  color: red;\n}\n", string(sheet.CSS()))
	assert.Equal(t, etag, sheet.ETag())
}

func TestSheet_ETag(t *testing.T) {
	build := func(color string) *Sheet {
		var b Builder
		b.AddRule(".a", "color: "+color)
		return b.Build()
	}

	assert.Equal(t, build("red").ETag(), build("red").ETag())
	assert.NotEqual(t, build("red").ETag(), build("blue").ETag())
	assert.True(t, strings.HasPrefix(build("red").ETag(), `"`))
}

func TestDefault(t *testing.T) {
	sheet := Default()
	css := string(sheet.CSS())

	for _, selector := range []string{
		".nav-item.active", ".feature-card", ".credit-card", ".credits-grid",
		".hero-title", ".cta-button", "@media (max-width: 768px)", "[hidden]",
	} {
		assert.Contains(t, css, selector+" {", "missing rule for %s", selector)
	}
	assert.Equal(t, Default().ETag(), sheet.ETag(), "the default sheet must be deterministic")
}
