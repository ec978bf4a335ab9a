package repositories

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *models.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, ID int) (*models.Job, error) {

	var job models.Job
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", ID).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &job, nil
}
