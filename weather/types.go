package weather

// Entry is one normalized alert entry from the battleboard feed.
type Entry struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Updated *string `json:"updatedISO"`
	Summary string  `json:"summary"`
	Link    *string `json:"link"`
}
