package gallery

type CreateCollectionRequest struct {
	Slug        string              `json:"slug"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	CoverURL    string              `json:"cover_url"`
	Images      []CollectionImageIn `json:"images"`
}

type CollectionImageIn struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}
