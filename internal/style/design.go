package style

const fontStack = "-apple-system, BlinkMacSystemFont, system-ui, sans-serif"

// glass is shared by both card kinds.
var glass = []string{
	"background: rgba(255, 255, 255, 0.05)",
	"backdrop-filter: blur(20px)",
	"-webkit-backdrop-filter: blur(20px)",
	"border: 1px solid rgba(255, 255, 255, 0.1)",
	"transition: all 0.4s ease",
	"position: relative",
	"z-index: 1",
}

// DesignSystem adds the base, component, layout and responsive rules.
func DesignSystem(b *Builder) {
	globalRules(b)
	componentRules(b)
	layoutRules(b)
	responsiveRules(b)
}

func globalRules(b *Builder) {
	b.AddRule("*", "margin: 0", "padding: 0", "box-sizing: border-box")
	b.AddRule("html, body",
		"font-family: "+fontStack,
		"-webkit-font-smoothing: antialiased",
		"-moz-osx-font-smoothing: grayscale",
		"background: #000000",
		"color: #f5f5f7",
		"line-height: 1.47",
		"overflow-x: hidden",
		"min-height: 100vh",
	)
	b.AddRule(".app-container",
		"min-height: 100vh",
		"background: linear-gradient(135deg, #000000 0%, #1d1d1f 50%, #000000 100%)",
	)
	b.AddRule("[hidden]", "display: none !important")
}

func componentRules(b *Builder) {
	b.AddRule(".page",
		"min-height: calc(100vh - 52px)",
		"padding: 80px 20px",
		"overflow: visible",
	)
	b.AddRule(".page-container",
		"max-width: 1200px",
		"margin: 0 auto",
		"text-align: center",
		"position: relative",
	)
	b.AddRule(".hero", "margin-bottom: 80px")
	b.AddRule(".hero-title",
		"display: block",
		"font-size: clamp(48px, 8vw, 96px)",
		"font-weight: 700",
		"letter-spacing: -0.055em",
		"margin-bottom: 24px",
		"background: linear-gradient(135deg, #ffffff 0%, #f5f5f7 25%, #d1d1d6 75%, #a1a1a6 100%)",
		"-webkit-background-clip: text",
		"-webkit-text-fill-color: transparent",
		"background-clip: text",
		"line-height: 1.05",
	)
	b.AddRule(".hero-subtitle",
		"display: block",
		"font-size: clamp(21px, 3vw, 28px)",
		"color: rgba(245, 245, 247, 0.7)",
		"margin-bottom: 48px",
		"letter-spacing: -0.022em",
	)

	b.AddRule(".feature-card", append(glass, "border-radius: 20px", "padding: 40px 32px", "overflow: hidden")...)
	b.AddRule(".feature-card:hover",
		"transform: translateY(-8px)",
		"background: rgba(255, 255, 255, 0.08)",
		"border-color: rgba(255, 255, 255, 0.2)",
		"box-shadow: 0 20px 40px rgba(0, 0, 0, 0.3)",
		"z-index: 10",
	)
	b.AddRule(".feature-icon", "font-size: 40px", "margin-bottom: 16px")
	b.AddRule(".feature-title",
		"font-size: 22px",
		"font-weight: 600",
		"margin-bottom: 16px",
		"letter-spacing: -0.022em",
	)
	b.AddRule(".feature-desc",
		"font-size: 17px",
		"color: rgba(245, 245, 247, 0.7)",
		"letter-spacing: -0.022em",
	)

	b.AddRule(".credit-card", append(glass, "border-radius: 24px", "padding: 60px 40px")...)
	b.AddRule(".credit-card:hover",
		"transform: translateY(-12px)",
		"background: rgba(255, 255, 255, 0.08)",
		"border-color: rgba(255, 255, 255, 0.2)",
		"box-shadow: 0 25px 50px rgba(0, 0, 0, 0.4)",
		"z-index: 10",
	)
	b.AddRule(".credit-avatar", "font-size: 48px", "margin-bottom: 20px")
	b.AddRule(".credit-name",
		"font-size: 32px",
		"font-weight: 600",
		"margin-bottom: 16px",
		"letter-spacing: -0.022em",
	)
	b.AddRule(".credit-role",
		"font-size: 18px",
		"color: rgba(245, 245, 247, 0.7)",
	)

	b.AddRule(".cta", "margin: 60px 0 40px", "padding: 40px")
	b.AddRule(".cta-button",
		"display: inline-block",
		"background: linear-gradient(135deg, #007aff 0%, #0056cc 100%)",
		"color: #ffffff",
		"border: none",
		"border-radius: 50px",
		"padding: 20px 40px",
		"font-family: "+fontStack,
		"font-size: 18px",
		"font-weight: 600",
		"text-decoration: none",
		"cursor: pointer",
		"transition: all 0.4s cubic-bezier(0.175, 0.885, 0.32, 1.275)",
		"box-shadow: 0 8px 30px rgba(0, 122, 255, 0.4), 0 4px 15px rgba(0, 122, 255, 0.2)",
	)
	b.AddRule(".cta-button:hover",
		"background: linear-gradient(135deg, #0084ff 0%, #0066ff 100%)",
		"box-shadow: 0 12px 40px rgba(0, 122, 255, 0.6), 0 8px 25px rgba(0, 122, 255, 0.3)",
		"transform: translateY(-3px) scale(1.02)",
	)
}

func layoutRules(b *Builder) {
	b.AddRule(".features",
		"display: grid",
		"grid-template-columns: repeat(auto-fit, minmax(300px, 1fr))",
		"gap: 24px",
		"margin: 60px 0",
		"padding: 20px 0 40px 0",
	)
	b.AddRule(".credits-grid",
		"display: grid",
		"grid-template-columns: repeat(auto-fit, minmax(350px, 1fr))",
		"gap: 40px",
		"margin-top: 60px",
		"padding: 30px 0 50px 0",
	)
	b.AddRule(".tech-stack",
		"margin-top: 80px",
		"padding-top: 60px",
		"border-top: 1px solid rgba(255, 255, 255, 0.1)",
	)
	b.AddRule(".tech-label",
		"font-size: 15px",
		"color: #a1a1a6",
		"margin-bottom: 20px",
		"text-transform: uppercase",
		"letter-spacing: 2px",
		"font-weight: 500",
	)
	b.AddRule(".tech-items", "font-size: 18px", "color: #d1d1d6")
}

func responsiveRules(b *Builder) {
	b.AddMedia("(max-width: 768px)", func(m *Builder) {
		m.AddRule(".nav-container", "padding: 0 16px")
		m.AddRule(".nav-menu", "gap: 20px")
		m.AddRule(".page", "padding: 40px 16px")
		m.AddRule(".features", "grid-template-columns: 1fr")
		m.AddRule(".credits-grid", "grid-template-columns: 1fr")
		m.AddRule(".feature-card, .credit-card", "padding: 32px 24px")
	})
}
