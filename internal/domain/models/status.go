package models

import (
	"fmt"
	"github.com/pkg/errors"
)

var ErrUnknownValue = errors.New("unknown value")

type ApplicationStatus string

const (
	StatusSourced         ApplicationStatus = "sourced"
	StatusQualified       ApplicationStatus = "qualified"
	StatusRhInterview     ApplicationStatus = "rh_interview"
	StatusClientInterview ApplicationStatus = "client_interview"
	StatusShortlist       ApplicationStatus = "shortlist"
	StatusOffer           ApplicationStatus = "offer"
	StatusRejected        ApplicationStatus = "rejected"
	StatusHired           ApplicationStatus = "hired"
)

var ApplicationStatuses = []ApplicationStatus{
	StatusSourced, StatusQualified, StatusRhInterview, StatusClientInterview,
	StatusShortlist, StatusOffer, StatusRejected, StatusHired,
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusSourced, StatusQualified, StatusRhInterview, StatusClientInterview,
		StatusShortlist, StatusOffer, StatusRejected, StatusHired:
		return true
	default:
		return false
	}
}

func (s ApplicationStatus) String() string {
	return string(s)
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("application status %q: %w", s, ErrUnknownValue)
	}
	return status, nil
}

type InterviewType string

const (
	InterviewRh               InterviewType = "rh"
	InterviewTechnical        InterviewType = "technical"
	InterviewClient           InterviewType = "client"
	InterviewPrequalification InterviewType = "prequalification"
	InterviewQualification    InterviewType = "qualification"
	InterviewOther            InterviewType = "other"
)

var InterviewTypes = []InterviewType{
	InterviewRh, InterviewTechnical, InterviewClient,
	InterviewPrequalification, InterviewQualification, InterviewOther,
}

func (t InterviewType) IsValid() bool {
	switch t {
	case InterviewRh, InterviewTechnical, InterviewClient,
		InterviewPrequalification, InterviewQualification, InterviewOther:
		return true
	default:
		return false
	}
}

// IsStructured reports whether feedback for this type is stored as a serialized form
// rather than plain text.
func (t InterviewType) IsStructured() bool {
	return t == InterviewPrequalification || t == InterviewQualification
}

func (t InterviewType) String() string {
	return string(t)
}

func ParseInterviewType(s string) (InterviewType, error) {
	interviewType := InterviewType(s)
	if !interviewType.IsValid() {
		return "", fmt.Errorf("interview type %q: %w", s, ErrUnknownValue)
	}
	return interviewType, nil
}

type InterviewDecision string

const (
	DecisionPending  InterviewDecision = "pending"
	DecisionPositive InterviewDecision = "positive"
	DecisionNegative InterviewDecision = "negative"
)

var InterviewDecisions = []InterviewDecision{DecisionPending, DecisionPositive, DecisionNegative}

func (d InterviewDecision) IsValid() bool {
	switch d {
	case DecisionPending, DecisionPositive, DecisionNegative:
		return true
	default:
		return false
	}
}

func (d InterviewDecision) String() string {
	return string(d)
}

func ParseInterviewDecision(s string) (InterviewDecision, error) {
	if s == "" {
		return DecisionPending, nil
	}
	decision := InterviewDecision(s)
	if !decision.IsValid() {
		return "", fmt.Errorf("interview decision %q: %w", s, ErrUnknownValue)
	}
	return decision, nil
}

// Label is a value prepared for display. Unknown values keep their raw text
// and are flagged so they can be rendered as unrecognized.
type Label struct {
	Value      string
	Recognized bool
}

type vocabulary interface {
	~string
	IsValid() bool
}

func DisplayLabel[T vocabulary](value T) Label {
	return Label{Value: string(value), Recognized: value.IsValid()}
}
