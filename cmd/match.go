package main

import (
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/matching"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match candidate skills against job requirements without calling the AI",
	RunE:  runMatch,
}

var (
	matchSkills        []string
	matchRequired      []string
	matchPreferred     []string
	matchYears         int
	matchRequiredYears int
)

func init() {
	matchCmd.Flags().StringSliceVar(&matchSkills, "skills", nil, "Candidate skills, comma separated")
	matchCmd.Flags().StringSliceVar(&matchRequired, "required", nil, "Required job skills, comma separated")
	matchCmd.Flags().StringSliceVar(&matchPreferred, "preferred", nil, "Preferred job skills, comma separated")
	matchCmd.Flags().IntVar(&matchYears, "years", 0, "Candidate experience in years")
	matchCmd.Flags().IntVar(&matchRequiredYears, "required-years", 0, "Required experience in years")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var candidateYears, requiredYears *int
	if cmd.Flags().Changed("years") {
		candidateYears = &matchYears
	}
	if cmd.Flags().Changed("required-years") {
		requiredYears = &matchRequiredYears
	}

	result := matching.Match(
		models.NormalizeSkills(matchSkills...),
		models.NormalizeSkills(matchRequired...),
		models.NormalizeSkills(matchPreferred...),
		candidateYears, requiredYears)

	printMatch(cmd.OutOrStdout(), result)
	return nil
}
