package expert

import (
	"context"

	expertRepo "bookexpert/database/repository/expert"
	"bookexpert/models"
)

// ExpertService exposes read access to the expert directory.
type ExpertService interface {
	List(ctx context.Context, q expertRepo.Query) (*models.ExpertPage, error)
	GetByID(ctx context.Context, id string) (*models.Expert, error)
}

// DefaultExpertService is the production ExpertService.
type DefaultExpertService struct {
	Repo expertRepo.ExpertRepository
}
