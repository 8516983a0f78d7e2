package expert

import (
	"context"
	"fmt"

	expertRepo "bookexpert/database/repository/expert"
	"bookexpert/models"
)

// List returns one page of the directory.
func (s *DefaultExpertService) List(ctx context.Context, q expertRepo.Query) (*models.ExpertPage, error) {
	page, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list experts: %w", err)
	}
	return page, nil
}

// GetByID returns a single expert with its full slot inventory. Callers
// distinguish a missing expert via expertRepo.ErrNotFound.
func (s *DefaultExpertService) GetByID(ctx context.Context, id string) (*models.Expert, error) {
	return s.Repo.GetByID(ctx, id)
}
