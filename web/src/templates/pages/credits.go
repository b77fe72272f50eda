package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zerohexer/cspnet/internal/content"
	"github.com/zerohexer/cspnet/web/src/templates/components"
)

// Credits lists the people behind the site.
func Credits(site *content.Site) g.Node {
	return Section(
		Class("page"), ID("page-credits"),
		Div(
			Class("page-container"),
			components.HeroBlock(site.CreditsPage),
			Div(Class("credits-grid"),
				g.Map(site.Credits, components.CreditCard),
			),
		),
	)
}
