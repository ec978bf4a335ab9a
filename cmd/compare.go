package main

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/repositories"
	"github.com/maxaizer/fit-core/internal/services"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Show the local match and the AI comparison of a candidate with one or more jobs",
	RunE:  runCompare,
}

var (
	compareCandidate int
	compareJobs      []int
	compareRefresh   bool
)

func init() {
	compareCmd.Flags().IntVar(&compareCandidate, "candidate", 0, "Candidate ID")
	compareCmd.Flags().IntSliceVar(&compareJobs, "job", nil, "Job IDs, repeatable")
	compareCmd.Flags().BoolVar(&compareRefresh, "refresh", false, "Ignore saved comparisons and ask the AI again")
	_ = compareCmd.MarkFlagRequired("candidate")
	_ = compareCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	reports := make([]*services.FitReport, len(compareJobs))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, jobID := range compareJobs {
		g.Go(func() error {
			key := models.ComparisonKey{CandidateID: compareCandidate, JobID: jobID}
			report, err := a.reporter.Report(ctx, key, compareRefresh)
			if err != nil {
				return errors.Wrapf(err, "comparison %s", key)
			}
			reports[i] = report
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return err
	}

	for _, report := range reports {
		status, err := applicationStatus(cmd.Context(), a.applications, report.Key)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report, status)
	}
	return nil
}

type applicationReader interface {
	GetByCandidateAndJob(ctx context.Context, candidateID, jobID int) (*models.Application, error)
}

// applicationStatus returns nil when the candidate has not applied to the job.
func applicationStatus(ctx context.Context, applications applicationReader, key models.ComparisonKey) (*models.Label, error) {
	application, err := applications.GetByCandidateAndJob(ctx, key.CandidateID, key.JobID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "application %s", key)
	}
	return lo.ToPtr(models.DisplayLabel(application.Status)), nil
}
