package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/zerohexer/cspnet/internal/content"
)

// FeatureCard renders one entry of the home page feature grid.
func FeatureCard(f content.Feature) g.Node {
	return Div(
		Class("feature-card"),
		g.If(f.Icon != "", Div(Class("feature-icon"), Aria("hidden", "true"), g.Text(f.Icon))),
		H3(Class("feature-title"), g.Text(f.Title)),
		P(Class("feature-desc"), g.Text(f.Description)),
	)
}

// CreditCard renders one contributor on the credits page.
func CreditCard(cr content.Credit) g.Node {
	return Div(
		Class("credit-card"),
		g.If(cr.Avatar != "", Div(Class("credit-avatar"), Aria("hidden", "true"), g.Text(cr.Avatar))),
		H3(Class("credit-name"), g.Text(cr.Name)),
		P(Class("credit-role"), g.Text(cr.Role)),
	)
}

// HeroBlock renders a page headline.
func HeroBlock(h content.Hero) g.Node {
	return Div(
		Class("hero"),
		H1(Class("hero-title"), g.Text(h.Title)),
		g.If(h.Subtitle != "", P(Class("hero-subtitle"), g.Text(h.Subtitle))),
	)
}
