package style

// Theme adds the navigation bar and the translucent card refinements on top
// of the design system.
func Theme(b *Builder) {
	b.AddRule(".nav-bar",
		"background: rgba(29, 29, 31, 0.8)",
		"backdrop-filter: saturate(180%) blur(20px)",
		"-webkit-backdrop-filter: saturate(180%) blur(20px)",
		"border-bottom: 0.5px solid rgba(255, 255, 255, 0.1)",
		"height: 52px",
		"position: sticky",
		"top: 0",
		"z-index: 9999",
	)
	b.AddRule(".nav-container",
		"max-width: 1200px",
		"margin: 0 auto",
		"height: 52px",
		"display: flex",
		"align-items: center",
		"justify-content: space-between",
		"padding: 0 20px",
	)
	b.AddRule(".nav-logo",
		"font-size: 21px",
		"font-weight: 600",
		"color: #f5f5f7",
		"letter-spacing: -0.022em",
		"text-decoration: none",
	)
	b.AddRule(".nav-menu", "display: flex", "gap: 32px", "align-items: center")
	b.AddRule(".nav-item",
		"color: #f5f5f7",
		"font-size: 17px",
		"text-decoration: none",
		"padding: 8px 16px",
		"border-radius: 20px",
		"transition: all 0.3s ease",
		"cursor: pointer",
		"opacity: 0.8",
	)
	b.AddRule(".nav-item:hover",
		"opacity: 1",
		"background: rgba(255, 255, 255, 0.1)",
		"transform: translateY(-1px)",
	)
	b.AddRule(".nav-item.active",
		"opacity: 1",
		"background: rgba(255, 255, 255, 0.15)",
		"color: #ffffff",
	)
	b.AddRule(".feature-card::before",
		"content: ''",
		"position: absolute",
		"top: 0",
		"left: 0",
		"right: 0",
		"height: 1px",
		"background: linear-gradient(90deg, transparent, rgba(255, 255, 255, 0.4), transparent)",
	)
	b.AddRule(".htmx-request .page-stack", "opacity: 0.6", "transition: opacity 0.2s ease")
}
