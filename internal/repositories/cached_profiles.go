package repositories

import (
	"context"
	"github.com/maxaizer/fit-core/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
	"strconv"
	"time"
)

type candidateRepository interface {
	GetByID(ctx context.Context, ID int) (*models.Candidate, error)
}

type jobRepository interface {
	GetByID(ctx context.Context, ID int) (*models.Job, error)
}

// CachedProfiles keeps recently read candidates and jobs, which are read-only to the fit core.
type CachedProfiles struct {
	candidates candidateRepository
	jobs       jobRepository
	cache      *gocache.Cache
}

func NewCachedProfiles(candidates candidateRepository, jobs jobRepository) *CachedProfiles {
	return &CachedProfiles{
		candidates: candidates,
		jobs:       jobs,
		cache:      gocache.New(10*time.Minute, 20*time.Minute),
	}
}

func (c *CachedProfiles) GetCandidate(ctx context.Context, ID int) (*models.Candidate, error) {
	cacheID := "candidate:" + strconv.Itoa(ID)
	if value, found := c.cache.Get(cacheID); found {
		candidate := value.(models.Candidate)
		return &candidate, nil
	}

	candidate, err := c.candidates.GetByID(ctx, ID)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(cacheID, *candidate)
	return candidate, nil
}

func (c *CachedProfiles) GetJob(ctx context.Context, ID int) (*models.Job, error) {
	cacheID := "job:" + strconv.Itoa(ID)
	if value, found := c.cache.Get(cacheID); found {
		job := value.(models.Job)
		return &job, nil
	}

	job, err := c.jobs.GetByID(ctx, ID)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(cacheID, *job)
	return job, nil
}
