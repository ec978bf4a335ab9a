package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

func notFoundAs(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
