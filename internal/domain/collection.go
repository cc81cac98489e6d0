package domain

import "time"

// Collection is a public gallery of images on the marketing site.
type Collection struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug" gorm:"uniqueIndex"`
	Title       string     `json:"title"`
	Description string     `json:"description" gorm:"type:text"`
	CoverURL    string     `json:"cover_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`

	Images []CollectionImage `json:"images,omitempty" gorm:"foreignKey:CollectionID"`
}

type CollectionImage struct {
	ID           int64  `json:"id"`
	CollectionID int64  `json:"collection_id"`
	URL          string `json:"url"`
	Alt          string `json:"alt,omitempty"`
	Position     int    `json:"position"`
}
