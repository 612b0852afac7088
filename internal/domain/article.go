package domain

import "time"

// Article is a normalized record from the upstream news provider. ID is the
// canonical article URL, the only stable identifier the provider exposes;
// favorite/read tracking keys on it.
type Article struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}
