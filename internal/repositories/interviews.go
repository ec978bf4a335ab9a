package repositories

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"gorm.io/gorm"
)

type Interviews struct {
	db *gorm.DB
}

func NewInterviewsRepository(db *gorm.DB) *Interviews {
	return &Interviews{db: db}
}

func (repo *Interviews) Add(ctx context.Context, interview *models.Interview) error {
	return repo.db.WithContext(ctx).Create(interview).Error
}

func (repo *Interviews) GetByID(ctx context.Context, ID int) (*models.Interview, error) {

	var interview models.Interview
	if err := repo.db.WithContext(ctx).First(&interview, "id = ?", ID).Error; err != nil {
		return nil, notFoundAs(err, ErrNotFound)
	}
	return &interview, nil
}

func (repo *Interviews) GetByApplication(ctx context.Context, applicationID int) ([]models.Interview, error) {

	var interviews []models.Interview
	if err := repo.db.WithContext(ctx).Order("starts_at").
		Find(&interviews, "application_id = ?", applicationID).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

func (repo *Interviews) UpdateFeedback(ctx context.Context, ID int, feedback string,
	decision models.InterviewDecision, score *int) error {

	res := repo.db.WithContext(ctx).Model(&models.Interview{}).Where("id = ?", ID).
		Updates(map[string]any{
			"feedback": feedback,
			"decision": decision,
			"score":    score,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *Interviews) UpdateTypeAndFeedback(ctx context.Context, ID int, interviewType models.InterviewType,
	feedback string) error {

	res := repo.db.WithContext(ctx).Model(&models.Interview{}).Where("id = ?", ID).
		Updates(map[string]any{
			"type":     interviewType,
			"feedback": feedback,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
