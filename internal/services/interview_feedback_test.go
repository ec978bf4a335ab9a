package services

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/feedback"
	"github.com/maxaizer/fit-core/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
	"time"
)

func newInterviewFixture(t *testing.T, interviewType models.InterviewType) (*InterviewFeedback, *repositories.Interviews, int) {
	dbCtx, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })

	interviews := repositories.NewInterviewsRepository(dbCtx.DB)
	interview := models.NewInterview(1, interviewType, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, interviews.Add(context.Background(), interview))

	return NewInterviewFeedback(interviews), interviews, interview.ID
}

func Test_InterviewFeedback_QualificationSubmitAndReopen(t *testing.T) {
	service, interviews, id := newInterviewFixture(t, models.InterviewQualification)
	ctx := context.Background()

	submitted := feedback.Qualification{
		TechnicalSkillsDeep: "strong",
		SoftSkills:          "good",
		CultureFit:          "yes",
		Potential:           "high",
		Remarks:             "",
	}
	require.NoError(t, service.Submit(ctx, id, submitted, models.DecisionPositive, intPtr(8)))

	stored, err := interviews.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, stored.Feedback, `"remarks":""`)

	form, err := service.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, submitted, form.Payload)
	assert.Equal(t, models.Label{Value: "positive", Recognized: true}, form.Decision)
	assert.Equal(t, intPtr(8), form.Interview.Score)
}

func Test_InterviewFeedback_SubmitRejectsInvalidInput(t *testing.T) {
	service, _, id := newInterviewFixture(t, models.InterviewPrequalification)
	ctx := context.Background()
	complete := feedback.Prequalification{TechnicalSkills: "go", Experience: "3y", Motivation: "high"}

	err := service.Submit(ctx, id, complete, models.DecisionPending, intPtr(11))
	assert.ErrorIs(t, err, ErrInvalidScore)

	err = service.Submit(ctx, id, complete, models.DecisionPending, intPtr(-1))
	assert.ErrorIs(t, err, ErrInvalidScore)

	err = service.Submit(ctx, id, complete, "maybe", nil)
	assert.ErrorIs(t, err, models.ErrUnknownValue)

	err = service.Submit(ctx, id, feedback.Prequalification{TechnicalSkills: "go"}, models.DecisionPending, nil)
	assert.ErrorIs(t, err, feedback.ErrMissingFields)

	err = service.Submit(ctx, id, feedback.Generic{Feedback: "text"}, models.DecisionPending, nil)
	assert.ErrorIs(t, err, feedback.ErrPayloadMismatch)

	assert.NoError(t, service.Submit(ctx, id, complete, "", intPtr(0)))
	form, err := service.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionPending, form.Interview.Decision)
}

func Test_InterviewFeedback_LoadMalformedFeedbackShowsEmptyForm(t *testing.T) {
	service, interviews, id := newInterviewFixture(t, models.InterviewPrequalification)
	ctx := context.Background()

	require.NoError(t, interviews.UpdateFeedback(ctx, id, "not json at all", models.DecisionNegative, nil))

	form, err := service.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, feedback.Prequalification{}, form.Payload)
	assert.Equal(t, "not json at all", form.Interview.Feedback)
}

func Test_InterviewFeedback_ChangeTypeDiscardsForeignForm(t *testing.T) {
	service, interviews, id := newInterviewFixture(t, models.InterviewPrequalification)
	ctx := context.Background()

	require.NoError(t, service.Submit(ctx, id,
		feedback.Prequalification{TechnicalSkills: "go", Experience: "3y", Motivation: "high"}, models.DecisionPending, nil))

	payload, err := service.ChangeType(ctx, id, models.InterviewQualification)
	require.NoError(t, err)
	assert.Equal(t, feedback.Qualification{}, payload)

	stored, err := interviews.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewQualification, stored.Type)
	assert.Equal(t, feedback.Qualification{}, feedback.Decode(stored.Type, stored.Feedback))

	_, err = service.ChangeType(ctx, id, "panel")
	assert.ErrorIs(t, err, models.ErrUnknownValue)
}

func Test_InterviewFeedback_ChangeTypeKeepsPlainText(t *testing.T) {
	service, interviews, id := newInterviewFixture(t, models.InterviewRh)
	ctx := context.Background()

	require.NoError(t, service.Submit(ctx, id, feedback.Generic{Feedback: "nice talk"}, models.DecisionPositive, nil))

	payload, err := service.ChangeType(ctx, id, models.InterviewClient)
	require.NoError(t, err)
	assert.Equal(t, feedback.Generic{Feedback: "nice talk"}, payload)

	stored, err := interviews.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "nice talk", stored.Feedback)
}

func Test_InterviewFeedback_UnknownInterviewType(t *testing.T) {
	service, interviews, id := newInterviewFixture(t, models.InterviewType("panel"))
	ctx := context.Background()

	require.NoError(t, service.Submit(ctx, id, feedback.Generic{Feedback: "legacy"}, models.DecisionPending, nil))

	form, err := service.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Label{Value: "panel", Recognized: false}, form.Type)
	assert.Equal(t, feedback.Generic{Feedback: "legacy"}, form.Payload)

	_, err = interviews.GetByID(ctx, id+1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func Test_InterviewFeedback_ChangeTypeToStructuredReplacesPlainText(t *testing.T) {
	service, interviews, id := newInterviewFixture(t, models.InterviewRh)
	ctx := context.Background()

	require.NoError(t, service.Submit(ctx, id, feedback.Generic{Feedback: "nice talk"}, models.DecisionPositive, nil))

	payload, err := service.ChangeType(ctx, id, models.InterviewPrequalification)
	require.NoError(t, err)
	assert.Equal(t, feedback.Prequalification{}, payload)

	stored, err := interviews.GetByID(ctx, id)
	require.NoError(t, err)
	assert.NotContains(t, stored.Feedback, "nice talk")
	assert.Contains(t, stored.Feedback, `"technical_skills":""`)
}
