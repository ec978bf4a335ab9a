package services

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/logger"
	"github.com/maxaizer/fit-core/internal/matching"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"math"
	"strconv"
	"strings"
	"time"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

type profileReader interface {
	GetCandidate(ctx context.Context, ID int) (*models.Candidate, error)
	GetJob(ctx context.Context, ID int) (*models.Job, error)
}

type comparisonSaver interface {
	Save(ctx context.Context, result models.ComparisonResult) error
}

// AIComparer asks the model for a structured comparison of a candidate and a job
// and saves the answer so later sessions can load it instead of asking again.
type AIComparer struct {
	aiClient aiClient
	profiles profileReader
	saver    comparisonSaver
}

func NewAIComparer(aiClient aiClient, profiles profileReader, saver comparisonSaver) *AIComparer {
	return &AIComparer{aiClient: aiClient, profiles: profiles, saver: saver}
}

type comparisonResponse struct {
	OverallScore        float64  `json:"overall_score"`
	TechnicalScore      float64  `json:"technical_score"`
	ExperienceScore     float64  `json:"experience_score"`
	SoftSkillsScore     *float64 `json:"soft_skills_score"`
	EducationScore      *float64 `json:"education_score"`
	MatchingSkills      []string `json:"matching_skills"`
	MissingSkills       []string `json:"missing_skills"`
	ComplementarySkills []string `json:"complementary_skills"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	Recommendations     []string `json:"recommendations"`
	Assessment          string   `json:"assessment"`
}

func (a *AIComparer) Compute(ctx context.Context, key models.ComparisonKey) (*models.ComparisonResult, error) {

	candidate, err := a.profiles.GetCandidate(ctx, key.CandidateID)
	if err != nil {
		return nil, errors.Wrapf(err, "get candidate %d", key.CandidateID)
	}

	job, err := a.profiles.GetJob(ctx, key.JobID)
	if err != nil {
		return nil, errors.Wrapf(err, "get job %d", key.JobID)
	}

	response, err := a.aiClient.GenerateResponse(ctx, comparisonRequest(*candidate, *job))
	if err != nil {
		return nil, err
	}
	log.Debugf("got comparison response for %v: %s", key, response)

	result, err := parseComparison(response)
	if err != nil {
		return nil, err
	}
	result.Key = key
	result.CreatedAt = time.Now().UTC()

	if err = result.Validate(); err != nil {
		return nil, err
	}

	if err = a.saver.Save(ctx, *result); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to save comparison %v: %v", key, err)
	}

	return result, nil
}

func comparisonRequest(candidate models.Candidate, job models.Job) string {
	match := matching.MatchCandidateToJob(candidate, job)

	var sb strings.Builder
	sb.WriteString("You compare a candidate with a job requisition for a recruiter.\n\n")

	sb.WriteString("Job: " + job.Title)
	if job.Department != "" {
		sb.WriteString(" (" + job.Department + ")")
	}
	sb.WriteString("\nRequired skills: " + joinOrNone(job.RequiredSkillsAsArray()))
	sb.WriteString("\nPreferred skills: " + joinOrNone(job.PreferredSkillsAsArray()))
	sb.WriteString("\nRequired experience (years): " + yearsOrUnknown(job.RequiredExperienceYears))

	sb.WriteString("\n\nCandidate skills: " + joinOrNone(candidate.SkillsAsArray()))
	sb.WriteString("\nCandidate experience (years): " + yearsOrUnknown(candidate.ExperienceYears))

	sb.WriteString(fmt.Sprintf("\n\nKeyword pre-check: %d/%d required and %d/%d preferred skills matched, experience %s.",
		match.MatchedRequired, match.TotalRequired, match.MatchedPreferred, match.TotalPreferred, match.Experience))

	sb.WriteString("\n\nAnswer with a single JSON object with the keys overall_score, technical_score, " +
		"experience_score, soft_skills_score, education_score (integers from 0 to 100, the last two may be null), " +
		"matching_skills, missing_skills, complementary_skills, strengths, weaknesses, recommendations " +
		"(arrays of strings) and assessment (a short paragraph).")
	return sb.String()
}

func parseComparison(raw string) (*models.ComparisonResult, error) {
	cleaned := extractJSONObject(raw)

	var response comparisonResponse
	if err := json.Unmarshal([]byte(cleaned), &response); err != nil {
		return nil, fmt.Errorf("parse comparison response: %w", err)
	}

	return &models.ComparisonResult{
		OverallScore:        roundScore(response.OverallScore),
		TechnicalScore:      roundScore(response.TechnicalScore),
		ExperienceScore:     roundScore(response.ExperienceScore),
		SoftSkillsScore:     optionalScore(response.SoftSkillsScore),
		EducationScore:      optionalScore(response.EducationScore),
		MatchingSkills:      cleanList(response.MatchingSkills),
		MissingSkills:       cleanList(response.MissingSkills),
		ComplementarySkills: cleanList(response.ComplementarySkills),
		Strengths:           cleanList(response.Strengths),
		Weaknesses:          cleanList(response.Weaknesses),
		Recommendations:     cleanList(response.Recommendations),
		Assessment:          strings.TrimSpace(response.Assessment),
	}, nil
}

func extractJSONObject(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return strings.TrimSpace(raw)
	}
	return raw[start : end+1]
}

func roundScore(score float64) int {
	return int(math.Round(score))
}

func optionalScore(score *float64) *int {
	if score == nil {
		return nil
	}
	return lo.ToPtr(roundScore(*score))
}

func cleanList(items []string) []string {
	return lo.Compact(lo.Map(items, func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func yearsOrUnknown(years *int) string {
	if years == nil {
		return "not specified"
	}
	return strconv.Itoa(*years)
}
