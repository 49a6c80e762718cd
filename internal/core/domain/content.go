package domain

// BlogPost is a content entry on the storefront blog.
type BlogPost struct {
	PostID      string `json:"postID"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	CoverImage  string `json:"coverImage,omitempty"`
	IsPublished bool   `json:"isPublished"`
	AuditFields
}

// Brand is a product manufacturer/label reference.
type Brand struct {
	BrandID string `json:"brandID"`
	Name    string `json:"name"`
	LogoURL string `json:"logoURL,omitempty"`
	AuditFields
}

// Category is a catalog grouping. ParentID is empty for top-level categories.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	ParentID   string `json:"parentID,omitempty"`
	AuditFields
}
