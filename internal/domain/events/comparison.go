package events

import (
	"github.com/maxaizer/fit-core/internal/domain/models"
)

var (
	ComparisonComputedTopic = "ComparisonComputedEvent"
	ComparisonFailedTopic   = "ComparisonFailedEvent"
)

type ComparisonComputed struct {
	Key    models.ComparisonKey
	Result models.ComparisonResult
	Forced bool
}

type ComparisonFailed struct {
	Key   models.ComparisonKey
	Error error
}
