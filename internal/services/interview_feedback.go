package services

import (
	"context"
	"fmt"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/feedback"
	"github.com/maxaizer/fit-core/internal/logger"
	"github.com/maxaizer/fit-core/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	MinScore = 0
	MaxScore = 10
)

var ErrInvalidScore = errors.New("score must be between 0 and 10")

type interviewRepository interface {
	GetByID(ctx context.Context, ID int) (*models.Interview, error)
	UpdateFeedback(ctx context.Context, ID int, feedback string, decision models.InterviewDecision, score *int) error
	UpdateTypeAndFeedback(ctx context.Context, ID int, interviewType models.InterviewType, feedback string) error
}

// InterviewForm is an interview prepared for editing.
type InterviewForm struct {
	Interview models.Interview
	Type      models.Label
	Decision  models.Label
	Payload   feedback.Payload
}

type InterviewFeedback struct {
	interviews interviewRepository
}

func NewInterviewFeedback(interviews interviewRepository) *InterviewFeedback {
	return &InterviewFeedback{interviews: interviews}
}

// Load decodes stored feedback into the typed form of the interview. Unreadable
// feedback shows up as an empty form.
func (s *InterviewFeedback) Load(ctx context.Context, interviewID int) (*InterviewForm, error) {
	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	return &InterviewForm{
		Interview: *interview,
		Type:      models.DisplayLabel(interview.Type),
		Decision:  models.DisplayLabel(interview.Decision),
		Payload:   feedback.Decode(interview.Type, interview.Feedback),
	}, nil
}

func (s *InterviewFeedback) Submit(ctx context.Context, interviewID int, payload feedback.Payload,
	decision models.InterviewDecision, score *int) error {

	if decision == "" {
		decision = models.DecisionPending
	}
	if !decision.IsValid() {
		return fmt.Errorf("interview decision %q: %w", decision, models.ErrUnknownValue)
	}
	if score != nil && (*score < MinScore || *score > MaxScore) {
		return fmt.Errorf("%w, got %d", ErrInvalidScore, *score)
	}
	if err := feedback.Validate(payload); err != nil {
		return err
	}

	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return err
	}

	encoded, err := feedback.Encode(interview.Type, payload)
	if err != nil {
		return err
	}

	if err = s.interviews.UpdateFeedback(ctx, interviewID, encoded, decision, score); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to save feedback for interview %d: %v", interviewID, err)
		return err
	}

	metrics.FeedbackSubmissions.WithLabelValues(interview.Type.String()).Inc()
	log.Infof("feedback saved for interview %d, decision: %s", interviewID, decision)
	return nil
}

// ChangeType re-reads the stored feedback under the new type and stores it re-encoded.
// Switching to a structured type keeps only a form of that type: plain text or a form
// of the other type is replaced by the empty form. Switching to a generic type keeps
// the stored text as it is.
func (s *InterviewFeedback) ChangeType(ctx context.Context, interviewID int, newType models.InterviewType) (feedback.Payload, error) {
	if !newType.IsValid() {
		return nil, fmt.Errorf("interview type %q: %w", newType, models.ErrUnknownValue)
	}

	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	payload := feedback.Decode(newType, interview.Feedback)
	if interview.Type == newType {
		return payload, nil
	}

	encoded, err := feedback.Encode(newType, payload)
	if err != nil {
		return nil, err
	}

	if err = s.interviews.UpdateTypeAndFeedback(ctx, interviewID, newType, encoded); err != nil {
		return nil, err
	}

	log.Infof("interview %d type changed from %s to %s", interviewID, interview.Type, newType)
	return payload, nil
}
