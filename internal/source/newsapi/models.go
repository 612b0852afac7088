package newsapi

// API response models for the provider wire format.

type apiResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`

	// Populated when status is "error".
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiArticle struct {
	Source      apiSource `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
}

type apiSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
