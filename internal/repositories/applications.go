package repositories

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *models.Application) error {
	return repo.db.WithContext(ctx).Create(application).Error
}

func (repo *Applications) GetByID(ctx context.Context, ID int) (*models.Application, error) {

	var application models.Application
	if err := repo.db.WithContext(ctx).First(&application, "id = ?", ID).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &application, nil
}

func (repo *Applications) GetByJob(ctx context.Context, jobID int) ([]models.Application, error) {

	var applications []models.Application
	if err := repo.db.WithContext(ctx).Find(&applications, "job_id = ?", jobID).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetByCandidateAndJob(ctx context.Context, candidateID, jobID int) (*models.Application, error) {

	var application models.Application
	if err := repo.db.WithContext(ctx).
		First(&application, "candidate_id = ? AND job_id = ?", candidateID, jobID).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &application, nil
}

// UpdateStatus stores the status as given; unknown statuses are kept for operators to correct.
func (repo *Applications) UpdateStatus(ctx context.Context, ID int, status models.ApplicationStatus) error {
	return repo.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", ID).
		Update("status", status).Error
}
