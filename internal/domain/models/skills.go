package models

import (
	"github.com/samber/lo"
	"strings"
)

// NormalizeSkills splits every element on commas, trims and lower-cases the parts
// and drops empty ones. Normalizing an already normalized list returns it unchanged.
func NormalizeSkills(raw ...string) []string {
	skills := make([]string, 0, len(raw))
	for _, item := range raw {
		parts := lo.Map(strings.Split(item, ","), func(part string, _ int) string {
			return strings.ToLower(strings.TrimSpace(part))
		})
		skills = append(skills, lo.Compact(parts)...)
	}
	return skills
}

func joinSkills(skills []string) string {
	return strings.Join(NormalizeSkills(skills...), ",")
}
