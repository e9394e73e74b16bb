package usecase

import "context"

// Seeder loads the sample data set. Seed is idempotent: it reports false and
// writes nothing when the data is already present.
type Seeder interface {
	Seed(ctx context.Context) (bool, error)
}
