package repositories

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func Test_Comparisons_LoadSavedWhenAbsent(t *testing.T) {
	repo := NewComparisonsRepository(newTestDbContext(t).DB)

	result, err := repo.LoadSaved(context.Background(), models.ComparisonKey{CandidateID: 1, JobID: 2})

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func Test_Comparisons_SaveAndLoad(t *testing.T) {
	repo := NewComparisonsRepository(newTestDbContext(t).DB)
	ctx := context.Background()
	key := models.ComparisonKey{CandidateID: 1, JobID: 2}

	result := models.ComparisonResult{
		Key:             key,
		OverallScore:    72,
		TechnicalScore:  80,
		ExperienceScore: 60,
		EducationScore:  intPtr(50),
		MatchingSkills:  []string{"python"},
		MissingSkills:   []string{"docker"},
		Assessment:      "good fit",
	}
	require.NoError(t, repo.Save(ctx, result))

	loaded, err := repo.LoadSaved(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, key, loaded.Key)
	assert.Equal(t, 72, loaded.OverallScore)
	assert.Equal(t, intPtr(50), loaded.EducationScore)
	assert.Nil(t, loaded.SoftSkillsScore)
	assert.Equal(t, []string{"docker"}, loaded.MissingSkills)

	other, err := repo.LoadSaved(ctx, models.ComparisonKey{CandidateID: 2, JobID: 1})
	assert.NoError(t, err)
	assert.Nil(t, other)

	result.OverallScore = 90
	require.NoError(t, repo.Save(ctx, result))
	loaded, err = repo.LoadSaved(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 90, loaded.OverallScore)
}

func Test_Comparisons_RemoveOlderThan(t *testing.T) {
	repo := NewComparisonsRepository(newTestDbContext(t).DB)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.ComparisonResult{Key: models.ComparisonKey{CandidateID: 1, JobID: 1}}))
	require.NoError(t, repo.Save(ctx, models.ComparisonResult{Key: models.ComparisonKey{CandidateID: 2, JobID: 1}}))

	removed, err := repo.RemoveOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	removed, err = repo.RemoveOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
