package models

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"slices"
	"time"
)

var validate = validator.New()

type ComparisonKey struct {
	CandidateID int
	JobID       int
}

func (k ComparisonKey) String() string {
	return fmt.Sprintf("%d:%d", k.CandidateID, k.JobID)
}

type ComparisonResult struct {
	Key                 ComparisonKey `json:"-"`
	OverallScore        int           `json:"overall_score" validate:"gte=0,lte=100"`
	TechnicalScore      int           `json:"technical_score" validate:"gte=0,lte=100"`
	ExperienceScore     int           `json:"experience_score" validate:"gte=0,lte=100"`
	SoftSkillsScore     *int          `json:"soft_skills_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	EducationScore      *int          `json:"education_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	MatchingSkills      []string      `json:"matching_skills"`
	MissingSkills       []string      `json:"missing_skills"`
	ComplementarySkills []string      `json:"complementary_skills"`
	Strengths           []string      `json:"strengths"`
	Weaknesses          []string      `json:"weaknesses"`
	Recommendations     []string      `json:"recommendations"`
	Assessment          string        `json:"assessment"`
	CreatedAt           time.Time     `json:"created_at"`
}

func (r *ComparisonResult) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid comparison result for %v: %w", r.Key, err)
	}
	return nil
}

// Clone returns a copy sharing no lists or sub-scores with r.
func (r ComparisonResult) Clone() ComparisonResult {
	clone := r
	if r.SoftSkillsScore != nil {
		clone.SoftSkillsScore = lo.ToPtr(*r.SoftSkillsScore)
	}
	if r.EducationScore != nil {
		clone.EducationScore = lo.ToPtr(*r.EducationScore)
	}
	clone.MatchingSkills = slices.Clone(r.MatchingSkills)
	clone.MissingSkills = slices.Clone(r.MissingSkills)
	clone.ComplementarySkills = slices.Clone(r.ComplementarySkills)
	clone.Strengths = slices.Clone(r.Strengths)
	clone.Weaknesses = slices.Clone(r.Weaknesses)
	clone.Recommendations = slices.Clone(r.Recommendations)
	return clone
}

// SavedComparison is the persisted form of a ComparisonResult.
type SavedComparison struct {
	CandidateID int `gorm:"primaryKey;autoIncrement:false"`
	JobID       int `gorm:"primaryKey;autoIncrement:false"`
	Value       []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
