package models

import "time"

type Candidate struct {
	ID              int
	Name            string
	Skills          string
	ExperienceYears *int
	CreatedAt       time.Time
}

func NewCandidate(name string, skills []string, experienceYears *int) *Candidate {
	return &Candidate{
		Name:            name,
		Skills:          joinSkills(skills),
		ExperienceYears: experienceYears,
	}
}

func (c *Candidate) SkillsAsArray() []string {
	if c.Skills == "" {
		return []string{}
	}
	return NormalizeSkills(c.Skills)
}
