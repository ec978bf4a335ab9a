package models

import "time"

type Job struct {
	ID                      int
	Title                   string
	Department              string
	RequiredSkills          string
	PreferredSkills         string
	RequiredExperienceYears *int
	CreatedAt               time.Time
}

func NewJob(title, department string, required, preferred []string, requiredExperienceYears *int) *Job {
	return &Job{
		Title:                   title,
		Department:              department,
		RequiredSkills:          joinSkills(required),
		PreferredSkills:         joinSkills(preferred),
		RequiredExperienceYears: requiredExperienceYears,
	}
}

func (j *Job) RequiredSkillsAsArray() []string {
	if j.RequiredSkills == "" {
		return []string{}
	}
	return NormalizeSkills(j.RequiredSkills)
}

func (j *Job) PreferredSkillsAsArray() []string {
	if j.PreferredSkills == "" {
		return []string{}
	}
	return NormalizeSkills(j.PreferredSkills)
}
