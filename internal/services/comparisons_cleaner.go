package services

import (
	"context"
	"github.com/maxaizer/fit-core/internal/logger"
	"github.com/maxaizer/fit-core/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type ComparisonCleanupRepository interface {
	RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error)
}

// ComparisonsCleaner removes saved comparisons from the store once a day. Session caches
// are not touched: a removed comparison is only recomputed when a new session asks for it.
type ComparisonsCleaner struct {
	comparisons          ComparisonCleanupRepository
	cron                 *cron.Cron
	expirationTimeInDays int
}

func NewComparisonsCleaner(comparisons ComparisonCleanupRepository, expirationInDays int) (*ComparisonsCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	cc := &ComparisonsCleaner{
		comparisons:          comparisons,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
	}

	if _, err := cc.cron.AddFunc("0 0 * * *", cc.cleanOldComparisons); err != nil {
		return nil, err
	}

	return cc, nil
}

func (cc *ComparisonsCleaner) Start() {
	cc.cron.Start()
	log.Infof("comparisons cleaner started, expiration in days: %d", cc.expirationTimeInDays)
}

func (cc *ComparisonsCleaner) Stop() {
	<-cc.cron.Stop().Done()
}

func (cc *ComparisonsCleaner) cleanOldComparisons() {
	expirationTime := time.Now().Add(-time.Duration(cc.expirationTimeInDays) * 24 * time.Hour)
	rowsAffected, err := cc.comparisons.RemoveOlderThan(context.Background(), expirationTime)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("Failed to clean old comparisons: %v", err)
		return
	}
	metrics.CleanedComparisonsCounter.Add(float64(rowsAffected))
	log.Infof("Old comparisons were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
}
