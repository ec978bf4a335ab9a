package repositories

import (
	"context"
	"encoding/json"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"time"
)

type Comparisons struct {
	db *gorm.DB
}

func NewComparisonsRepository(db *gorm.DB) *Comparisons {
	return &Comparisons{db: db}
}

func (repo *Comparisons) Save(ctx context.Context, result models.ComparisonResult) error {
	value, err := json.Marshal(result)
	if err != nil {
		return errors.Wrapf(err, "marshal comparison %v", result.Key)
	}

	return repo.db.WithContext(ctx).Save(&models.SavedComparison{
		CandidateID: result.Key.CandidateID,
		JobID:       result.Key.JobID,
		Value:       value,
	}).Error
}

// LoadSaved returns nil, nil when no comparison was saved for the key.
func (repo *Comparisons) LoadSaved(ctx context.Context, key models.ComparisonKey) (*models.ComparisonResult, error) {
	saved := &models.SavedComparison{}
	err := repo.db.WithContext(ctx).
		First(saved, "candidate_id = ? AND job_id = ?", key.CandidateID, key.JobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var result models.ComparisonResult
	if err = json.Unmarshal(saved.Value, &result); err != nil {
		return nil, errors.Wrapf(err, "unmarshal comparison %v", key)
	}
	result.Key = key
	return &result, nil
}

func (repo *Comparisons) Remove(ctx context.Context, key models.ComparisonKey) error {
	return repo.db.WithContext(ctx).
		Delete(&models.SavedComparison{}, "candidate_id = ? AND job_id = ?", key.CandidateID, key.JobID).Error
}

func (repo *Comparisons) RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.SavedComparison{}, "updated_at < ?", expirationTime)
	return res.RowsAffected, res.Error
}
