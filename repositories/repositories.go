package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
)

type Repositories struct {
	ExecutorGetter           ExecutorGetter
	UploadTrackingRepository UploadTrackingRepository
	BlobRepository           BlobRepository
	TaskQueueRepository      TaskQueueRepository
}

type Option func(*options)

type options struct {
	riverClient *river.Client[pgx.Tx]
}

func WithRiverClient(client *river.Client[pgx.Tx]) Option {
	return func(o *options) {
		o.riverClient = client
	}
}

func NewRepositories(pool *pgxpool.Pool, opts ...Option) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	repos := Repositories{
		ExecutorGetter:           NewExecutorGetter(pool),
		UploadTrackingRepository: UploadTrackingRepositoryPostgresql{},
		BlobRepository:           NewBlobRepository(),
	}
	if o.riverClient != nil {
		repos.TaskQueueRepository = NewTaskQueueRepository(o.riverClient)
	}
	return repos
}
