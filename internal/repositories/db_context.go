package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	entities := []struct {
		name  string
		model any
	}{
		{"Candidate", models.Candidate{}},
		{"Job", models.Job{}},
		{"Application", models.Application{}},
		{"Interview", models.Interview{}},
		{"SavedComparison", models.SavedComparison{}},
	}

	for _, entity := range entities {
		if err := c.DB.AutoMigrate(entity.model); err != nil {
			return fmt.Errorf("failed to migrate %s entity: %w", entity.name, err)
		}
	}

	if err := c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_application_candidate_job " +
		"ON applications (candidate_id, job_id);").Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
