package service

import (
	"context"
	"strings"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/models"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/store"
)

type ResourceService struct {
	resources store.ResourceStore
	now       func() time.Time
}

func NewResourceService(resources store.ResourceStore) *ResourceService {
	return &ResourceService{resources: resources, now: time.Now}
}

func (s *ResourceService) List(ctx context.Context) ([]models.Resource, error) {
	resources, err := s.resources.List(ctx)
	if err != nil {
		return nil, serverError("Error getting resources", err)
	}
	return resources, nil
}

func (s *ResourceService) Add(ctx context.Context, in models.ResourceInput) (*models.Resource, error) {
	resource := &models.Resource{
		Title:       strings.TrimSpace(in.Title),
		Link:        strings.TrimSpace(in.Link),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   s.now(),
	}
	if resource.Title == "" || resource.Link == "" {
		return nil, validationError("Title and link are required")
	}

	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, serverError("Error adding resource", err)
	}
	return resource, nil
}
