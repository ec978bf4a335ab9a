package repositories

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"gorm.io/gorm"
)

type Candidates struct {
	db *gorm.DB
}

func NewCandidatesRepository(db *gorm.DB) *Candidates {
	return &Candidates{db: db}
}

func (repo *Candidates) Add(ctx context.Context, candidate *models.Candidate) error {
	return repo.db.WithContext(ctx).Create(candidate).Error
}

func (repo *Candidates) GetByID(ctx context.Context, ID int) (*models.Candidate, error) {

	var candidate models.Candidate
	if err := repo.db.WithContext(ctx).First(&candidate, "id = ?", ID).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &candidate, nil
}
