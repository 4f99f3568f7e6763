package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
)

type resourceRow struct {
	ID        string    `db:"id"`
	DomainID  string    `db:"domain_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

func (r resourceRow) toResource() resource.Resource {
	return resource.Resource{
		ID:        r.ID,
		DomainID:  r.DomainID,
		Type:      r.Type,
		Title:     r.Title,
		URL:       r.URL,
		Source:    r.Source,
		CreatedAt: r.CreatedAt,
	}
}

type resourceRepository struct {
	db *sqlx.DB
}

var _ resource.Repository = (*resourceRepository)(nil) // interface compliance check

func NewResourceRepository(db *sqlx.DB) *resourceRepository {
	return &resourceRepository{db: db}
}

func (repo *resourceRepository) CreateResource(ctx context.Context, res resource.Resource) (resource.Resource, error) {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO resources (id, domain_id, type, title, url, source, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID, res.DomainID, res.Type, res.Title, res.URL, res.Source, res.CreatedAt.UTC(),
	)
	if err != nil {
		return resource.Resource{}, errors.Wrap(err, "inserting resource")
	}
	return res, nil
}

func (repo *resourceRepository) ResourcesByDomain(ctx context.Context, domainID string) ([]resource.Resource, error) {
	var rows []resourceRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT id, domain_id, type, title, url, source, created_at FROM resources
		 WHERE domain_id = $1 ORDER BY created_at ASC`,
		domainID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying resources")
	}
	resources := make([]resource.Resource, 0, len(rows))
	for _, r := range rows {
		resources = append(resources, r.toResource())
	}
	return resources, nil
}
