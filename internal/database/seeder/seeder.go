package seeder

import (
	"context"

	"skillhub/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
