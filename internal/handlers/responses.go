package handlers

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	// Visits counts successful navigations per route since startup.
	Visits   map[string]int `json:"visits"`
	Sessions int            `json:"sessions"`
}
