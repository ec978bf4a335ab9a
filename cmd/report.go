package main

import (
	"fmt"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/matching"
	"github.com/maxaizer/fit-core/internal/services"
	"io"
	"strings"
)

func printMatch(w io.Writer, result matching.MatchResult) {
	fmt.Fprintf(w, "  required skills: %d/%d matched", result.MatchedRequired, result.TotalRequired)
	if missing := result.MissingRequired(); len(missing) > 0 {
		fmt.Fprintf(w, ", missing: %s", strings.Join(missing, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  preferred skills: %d/%d matched\n", result.MatchedPreferred, result.TotalPreferred)
	fmt.Fprintf(w, "  experience: %s\n", result.Experience)
}

func printReport(w io.Writer, report *services.FitReport, status *models.Label) {
	fmt.Fprintf(w, "%s -> %s (%s)\n", report.Candidate.Name, report.Job.Title, report.Job.Department)
	if status != nil {
		fmt.Fprintf(w, "  application: %s\n", labelText(*status))
	} else {
		fmt.Fprintln(w, "  application: none")
	}
	printMatch(w, report.Match)

	switch {
	case report.Unavailable():
		fmt.Fprintf(w, "  AI comparison unavailable: %v\n", report.ComparisonErr)
	case report.Comparison == nil:
		fmt.Fprintln(w, "  AI comparison: none")
	default:
		c := report.Comparison
		fmt.Fprintf(w, "  AI comparison: overall %d, technical %d, experience %d\n",
			c.OverallScore, c.TechnicalScore, c.ExperienceScore)
		if c.Assessment != "" {
			fmt.Fprintf(w, "  %s\n", c.Assessment)
		}
		for _, recommendation := range c.Recommendations {
			fmt.Fprintf(w, "  - %s\n", recommendation)
		}
	}
}
