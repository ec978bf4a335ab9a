package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/fit-core/internal/clients/gemini"
	"github.com/maxaizer/fit-core/internal/comparison"
	"github.com/maxaizer/fit-core/internal/config"
	"github.com/maxaizer/fit-core/internal/domain/events"
	"github.com/maxaizer/fit-core/internal/logger"
	"github.com/maxaizer/fit-core/internal/repositories"
	"github.com/maxaizer/fit-core/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type app struct {
	cfg          *config.Config
	dbContext    *repositories.DbContext
	aiClient     *gemini.Client
	bus          EventBus.Bus
	comparisons  *repositories.Comparisons
	applications *repositories.Applications
	interviews   *repositories.Interviews
	cache        *comparison.Cache
	reporter     *services.FitReporter
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Get()
	logger.Setup(cfg.Logger)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "can't create db context")
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't migrate db context")
	}

	aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, cfg.AI.Model)
	if err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't create AI client")
	}
	aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)

	comparisons := repositories.NewComparisonsRepository(dbContext.DB)
	profiles := repositories.NewCachedProfiles(
		repositories.NewCandidatesRepository(dbContext.DB),
		repositories.NewJobsRepository(dbContext.DB))

	bus := EventBus.New()
	subscribeLogging(bus)

	cache := comparison.NewCache(comparisons, services.NewAIComparer(aiClient, profiles, comparisons),
		comparison.WithBus(bus))

	return &app{
		cfg:          cfg,
		dbContext:    dbContext,
		aiClient:     aiClient,
		bus:          bus,
		comparisons:  comparisons,
		applications: repositories.NewApplicationsRepository(dbContext.DB),
		interviews:   repositories.NewInterviewsRepository(dbContext.DB),
		cache:        cache,
		reporter:     services.NewFitReporter(profiles, cache),
	}, nil
}

func (a *app) Close() {
	a.cache.Reset()
	if err := a.aiClient.Close(); err != nil {
		log.Warnf("failed to close AI client: %v", err)
	}
	if err := a.dbContext.Close(); err != nil {
		log.Warnf("failed to close db: %v", err)
	}
	logger.Cleanup()
}

func subscribeLogging(bus EventBus.Bus) {
	_ = bus.Subscribe(events.ComparisonComputedTopic, func(e events.ComparisonComputed) {
		log.Debugf("comparison %s computed, overall score %d, forced: %t", e.Key, e.Result.OverallScore, e.Forced)
	})
	_ = bus.Subscribe(events.ComparisonFailedTopic, func(e events.ComparisonFailed) {
		log.Warnf("comparison %s failed: %v", e.Key, e.Error)
	})
}
