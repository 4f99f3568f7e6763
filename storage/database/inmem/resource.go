package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
)

type resourceRepository struct {
	db *DB
}

var _ resource.Repository = (*resourceRepository)(nil) // interface compliance check

func NewResourceRepository(db *DB) *resourceRepository {
	return &resourceRepository{db: db}
}

func (repo *resourceRepository) CreateResource(_ context.Context, res resource.Resource) (resource.Resource, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	repo.db.resources = append(repo.db.resources, res)
	return res, nil
}

func (repo *resourceRepository) ResourcesByDomain(_ context.Context, domainID string) ([]resource.Resource, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var out []resource.Resource
	for _, res := range repo.db.resources {
		if res.DomainID == domainID {
			out = append(out, res)
		}
	}
	return out, nil
}
