package model

// Article is a display-ready summary of a syndication feed entry.
type Article struct {
	Title      string   `json:"title"`
	Link       string   `json:"link"`
	PubDate    string   `json:"pubDate"`
	ImageURL   *string  `json:"imageUrl"`
	Categories []string `json:"categories"`
}

// Valid reports whether mandatory fields are present.
func (x *Article) Valid() bool {
	return x != nil && x.Title != "" && x.Link != ""
}
