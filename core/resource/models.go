package resource

import "time"

// Resource is one curated learning resource tied to a technical domain.
type Resource struct {
	ID        string    `json:"id"`
	DomainID  string    `json:"domainId"`
	Type      string    `json:"type"` // video, playlist, article, blog, documentation, docs, tool, software
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// Grouped buckets a domain's resources by coarse type for the frontend.
// Empty buckets serialize as [] rather than null.
type Grouped struct {
	Videos        []Resource `json:"videos"`
	Articles      []Resource `json:"articles"`
	Documentation []Resource `json:"documentation"`
	Tools         []Resource `json:"tools"`
}

// NewResource contains information needed to register a curated resource.
type NewResource struct {
	DomainID string `json:"domainId" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Title    string `json:"title" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Source   string `json:"source"`
}
