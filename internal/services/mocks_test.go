package services

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type mockSaver struct {
	mock.Mock
}

func (m *mockSaver) Save(ctx context.Context, result models.ComparisonResult) error {
	return m.Called(ctx, result).Error(0)
}

type stubProfiles struct {
	candidates map[int]models.Candidate
	jobs       map[int]models.Job
}

func (s stubProfiles) GetCandidate(_ context.Context, ID int) (*models.Candidate, error) {
	candidate, ok := s.candidates[ID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &candidate, nil
}

func (s stubProfiles) GetJob(_ context.Context, ID int) (*models.Job, error) {
	job, ok := s.jobs[ID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &job, nil
}

func intPtr(v int) *int {
	return &v
}

func testProfiles() stubProfiles {
	candidate := models.NewCandidate("Ann", []string{"Python", "SQL"}, nil)
	candidate.ID = 1
	job := models.NewJob("Backend developer", "IT", []string{"python", "docker"}, []string{"kubernetes"}, intPtr(3))
	job.ID = 2

	return stubProfiles{
		candidates: map[int]models.Candidate{1: *candidate},
		jobs:       map[int]models.Job{2: *job},
	}
}
