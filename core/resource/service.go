package resource

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type (
	Repository interface {
		CreateResource(ctx context.Context, res Resource) (Resource, error)
		// ResourcesByDomain returns all resources for the domain, oldest first.
		ResourcesByDomain(ctx context.Context, domainID string) ([]Resource, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nr NewResource) (Resource, error) {
	res := Resource{
		DomainID:  nr.DomainID,
		Type:      strings.ToLower(strings.TrimSpace(nr.Type)),
		Title:     nr.Title,
		URL:       nr.URL,
		Source:    nr.Source,
		CreatedAt: time.Now().UTC(),
	}
	res, err := svc.repo.CreateResource(ctx, res)
	if err != nil {
		return Resource{}, errors.Wrap(err, "creating resource")
	}
	return res, nil
}

// ForDomain returns the domain's curated resources grouped by coarse type.
func (svc *Service) ForDomain(ctx context.Context, domainID string) (Grouped, error) {
	grouped := Grouped{
		Videos:        []Resource{},
		Articles:      []Resource{},
		Documentation: []Resource{},
		Tools:         []Resource{},
	}

	all, err := svc.repo.ResourcesByDomain(ctx, domainID)
	if err != nil {
		return Grouped{}, errors.Wrap(err, "querying resources")
	}

	for _, res := range all {
		switch strings.ToLower(res.Type) {
		case "video", "playlist":
			grouped.Videos = append(grouped.Videos, res)
		case "article", "blog":
			grouped.Articles = append(grouped.Articles, res)
		case "documentation", "docs":
			grouped.Documentation = append(grouped.Documentation, res)
		case "tool", "software":
			grouped.Tools = append(grouped.Tools, res)
		}
	}
	return grouped, nil
}
