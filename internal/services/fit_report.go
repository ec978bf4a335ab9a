package services

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/matching"
	"github.com/pkg/errors"
)

type comparisonCache interface {
	GetOrCompute(ctx context.Context, key models.ComparisonKey, forceRefresh bool) (*models.ComparisonResult, error)
	Peek(key models.ComparisonKey) (*models.ComparisonResult, bool)
	IsLoading(key models.ComparisonKey) bool
}

// FitReport holds the local match, which is always present, and the AI comparison,
// which may be missing, still loading or failed.
type FitReport struct {
	Key           models.ComparisonKey
	Candidate     models.Candidate
	Job           models.Job
	Match         matching.MatchResult
	Comparison    *models.ComparisonResult
	ComparisonErr error
	Loading       bool
}

// Unavailable reports whether the UI should offer to retry the AI comparison.
func (r *FitReport) Unavailable() bool {
	return r.ComparisonErr != nil
}

type FitReporter struct {
	profiles profileReader
	cache    comparisonCache
}

func NewFitReporter(profiles profileReader, cache comparisonCache) *FitReporter {
	return &FitReporter{profiles: profiles, cache: cache}
}

// Summary never triggers a comparison: it shows what the session already has.
func (r *FitReporter) Summary(ctx context.Context, key models.ComparisonKey) (*FitReport, error) {
	report, err := r.localReport(ctx, key)
	if err != nil {
		return nil, err
	}
	report.Comparison, _ = r.cache.Peek(key)
	report.Loading = r.cache.IsLoading(key)
	return report, nil
}

func (r *FitReporter) Report(ctx context.Context, key models.ComparisonKey, forceRefresh bool) (*FitReport, error) {
	report, err := r.localReport(ctx, key)
	if err != nil {
		return nil, err
	}

	report.Comparison, report.ComparisonErr = r.cache.GetOrCompute(ctx, key, forceRefresh)
	report.Loading = r.cache.IsLoading(key)
	return report, nil
}

func (r *FitReporter) localReport(ctx context.Context, key models.ComparisonKey) (*FitReport, error) {
	candidate, err := r.profiles.GetCandidate(ctx, key.CandidateID)
	if err != nil {
		return nil, errors.Wrapf(err, "get candidate %d", key.CandidateID)
	}

	job, err := r.profiles.GetJob(ctx, key.JobID)
	if err != nil {
		return nil, errors.Wrapf(err, "get job %d", key.JobID)
	}

	return &FitReport{
		Key:       key,
		Candidate: *candidate,
		Job:       *job,
		Match:     matching.MatchCandidateToJob(*candidate, *job),
	}, nil
}
