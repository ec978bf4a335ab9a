// Package matching compares a candidate profile with a job requisition without
// any remote calls. Its result is always available, whatever the state of the AI comparison.
package matching

import (
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/samber/lo"
	"strings"
)

type ExperienceFit int

const (
	ExperienceNotApplicable ExperienceFit = iota
	ExperienceSufficient
	ExperienceInsufficient
)

func (e ExperienceFit) String() string {
	switch e {
	case ExperienceSufficient:
		return "sufficient"
	case ExperienceInsufficient:
		return "insufficient"
	default:
		return "not_applicable"
	}
}

// Applicable is false when the job states no experience requirement.
func (e ExperienceFit) Applicable() bool {
	return e != ExperienceNotApplicable
}

type SkillMatch struct {
	Skill   string
	Matched bool
}

type MatchResult struct {
	Required         []SkillMatch
	Preferred        []SkillMatch
	MatchedRequired  int
	TotalRequired    int
	MatchedPreferred int
	TotalPreferred   int
	Experience       ExperienceFit
}

func (r MatchResult) MissingRequired() []string {
	return lo.FilterMap(r.Required, func(m SkillMatch, _ int) (string, bool) {
		return m.Skill, !m.Matched
	})
}

func (r MatchResult) MatchedSkills() []string {
	all := append(append([]SkillMatch{}, r.Required...), r.Preferred...)
	return lo.Uniq(lo.FilterMap(all, func(m SkillMatch, _ int) (string, bool) {
		return m.Skill, m.Matched
	}))
}

func Match(candidateSkills, jobRequired, jobPreferred []string,
	candidateExperienceYears, jobRequiredExperienceYears *int) MatchResult {

	candidate := models.NormalizeSkills(candidateSkills...)

	required := matchSkills(candidate, models.NormalizeSkills(jobRequired...))
	preferred := matchSkills(candidate, models.NormalizeSkills(jobPreferred...))

	return MatchResult{
		Required:         required,
		Preferred:        preferred,
		MatchedRequired:  countMatched(required),
		TotalRequired:    len(required),
		MatchedPreferred: countMatched(preferred),
		TotalPreferred:   len(preferred),
		Experience:       experienceFit(candidateExperienceYears, jobRequiredExperienceYears),
	}
}

func MatchCandidateToJob(candidate models.Candidate, job models.Job) MatchResult {
	return Match(candidate.SkillsAsArray(), job.RequiredSkillsAsArray(), job.PreferredSkillsAsArray(),
		candidate.ExperienceYears, job.RequiredExperienceYears)
}

func matchSkills(candidate []string, job []string) []SkillMatch {
	return lo.Map(job, func(skill string, _ int) SkillMatch {
		return SkillMatch{
			Skill: skill,
			Matched: lo.ContainsBy(candidate, func(c string) bool {
				return strings.Contains(skill, c) || strings.Contains(c, skill)
			}),
		}
	})
}

func countMatched(matches []SkillMatch) int {
	return lo.CountBy(matches, func(m SkillMatch) bool { return m.Matched })
}

func experienceFit(candidateYears, requiredYears *int) ExperienceFit {
	if requiredYears == nil {
		return ExperienceNotApplicable
	}
	years := 0
	if candidateYears != nil {
		years = *candidateYears
	}
	if years >= *requiredYears {
		return ExperienceSufficient
	}
	return ExperienceInsufficient
}
