package pages

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zerohexer/cspnet/internal/content"
	"github.com/zerohexer/cspnet/internal/router"
	"github.com/zerohexer/cspnet/web/src/templates/components"
)

// Home is the landing page: hero, feature grid, call to action and tech stack.
func Home(site *content.Site) g.Node {
	return Section(
		Class("page"), ID("page-home"),
		Div(
			Class("page-container"),
			components.HeroBlock(site.Home),
			Div(Class("features"),
				g.Map(site.Features, components.FeatureCard),
			),
			Div(Class("cta"),
				components.NavLink(router.Route(site.CTA.Route), Class("cta-button"), g.Text(site.CTA.Label)),
			),
			Div(Class("tech-stack"),
				P(Class("tech-label"), g.Text(site.TechStack.Label)),
				P(Class("tech-items"), g.Text(strings.Join(site.TechStack.Items, " • "))),
			),
		),
	)
}
