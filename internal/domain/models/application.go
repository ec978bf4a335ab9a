package models

import "time"

type Application struct {
	ID          int
	CandidateID int `gorm:"index"`
	JobID       int `gorm:"index"`
	Status      ApplicationStatus
	Shortlisted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewApplication(candidateID, jobID int) *Application {
	return &Application{
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      StatusSourced,
	}
}

type Interview struct {
	ID            int
	ApplicationID int `gorm:"index"`
	Type          InterviewType
	StartsAt      time.Time
	EndsAt        time.Time
	Location      string
	Notes         string
	Feedback      string
	Decision      InterviewDecision `gorm:"default:pending"`
	Score         *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewInterview(applicationID int, interviewType InterviewType, startsAt, endsAt time.Time) *Interview {
	return &Interview{
		ApplicationID: applicationID,
		Type:          interviewType,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Decision:      DecisionPending,
	}
}
