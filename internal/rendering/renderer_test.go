package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func templText(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), P(g.Text("gomponent")))
	require.NoError(t, err)
	assert.Equal(t, "<p>gomponent</p>", string(out))

	out, err = r.RenderComponent(context.Background(), templText("<b>templ</b>"))
	require.NoError(t, err)
	assert.Equal(t, "<b>templ</b>", string(out))

	_, err = r.RenderComponent(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedComponent)
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	r := NewUniversalRenderer()

	t.Run("writes status and content type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, r.RenderPage(c, http.StatusAccepted, Div(g.Text("ok"))))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "<div>ok</div>", rec.Body.String())
	})

	t.Run("does not commit the response on failure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := r.RenderPage(c, http.StatusOK, struct{}{})

		assert.ErrorIs(t, err, ErrUnsupportedComponent)
		assert.False(t, c.Response().Committed)
	})
}

func TestEchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.Render(http.StatusOK, "", Span(g.Text("hi"))))

	assert.Equal(t, "<span>hi</span>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}
