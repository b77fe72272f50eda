package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/zerohexer/cspnet/internal/view"
)

// HTMXSrc is the htmx build the pages load.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps body in the HTML document shared by every page.
func Base(title, stylesheet string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.HTML5(c.HTML5Props{
			Title:    title,
			Language: "en",
			Head: []g.Node{
				h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href("/static/favicon.svg")),
				h.Link(h.Rel("stylesheet"), h.Href(stylesheet)),
				h.Script(h.Src(HTMXSrc), h.Defer()),
			},
			Body: []g.Node{view.AdaptTemplToGomponent(ctx, body)},
		}).Render(w)
	})
}
