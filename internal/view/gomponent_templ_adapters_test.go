package view

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestAdaptGomponentToTempl(t *testing.T) {
	var buf bytes.Buffer
	err := AdaptGomponentToTempl(h.P(g.Text("hi"))).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", buf.String())
}

func TestAdaptTemplToGomponent(t *testing.T) {
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v, _ := ctx.Value(ctxKey{}).(string)
		_, err := io.WriteString(w, "<em>"+v+"</em>")
		return err
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, "from-ctx")
	var buf bytes.Buffer
	err := h.Div(AdaptTemplToGomponent(ctx, component)).Render(&buf)
	require.NoError(t, err)
	assert.Equal(t, "<div><em>from-ctx</em></div>", buf.String())

	buf.Reset()
	//nolint:staticcheck // a nil context must fall back to Background
	err = AdaptTemplToGomponent(nil, component).Render(&buf)
	require.NoError(t, err)
	assert.Equal(t, "<em></em>", buf.String())
}
