package domain

// SiteConfig is the SEO and branding payload from /site-config.
type SiteConfig struct {
	ID                 int       `json:"id"`
	SiteTitle          string    `json:"site_title"`
	BrandName          string    `json:"brand_name"`
	MetaDescription    string    `json:"meta_description"`
	MetaKeywords       string    `json:"meta_keywords"`
	FaviconFile        *string   `json:"favicon_file"`
	OGTitle            string    `json:"og_title"`
	OGDescription      string    `json:"og_description"`
	OGImageFile        *string   `json:"og_image_file"`
	OGURL              *string   `json:"og_url"`
	OGType             string    `json:"og_type"`
	TwitterCard        string    `json:"twitter_card"`
	TwitterTitle       string    `json:"twitter_title"`
	TwitterDescription string    `json:"twitter_description"`
	TwitterImageFile   *string   `json:"twitter_image_file"`
	FaviconData        *FileData `json:"favicon_data,omitempty"`
	OGImageData        *FileData `json:"og_image_data,omitempty"`
	TwitterImageData   *FileData `json:"twitter_image_data,omitempty"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
}

// Health is the backend liveness payload.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
