package layouts

// CalculateTitle handles the conditional logic for the document title.
func CalculateTitle(page, site string) string {
	switch {
	case page == "":
		return site
	case site == "":
		return page
	default:
		return page + " • " + site
	}
}
