package usecases

import (
	"github.com/uplox/uploads-backend/repositories"
	"github.com/uplox/uploads-backend/usecases/executor_factory"
)

// AcceptedUploadExtension is the only object suffix the pipeline reacts to,
// any other object finalized in the bucket is acknowledged and ignored.
const AcceptedUploadExtension = ".csv"

type Usecases struct {
	Repositories    repositories.Repositories
	ExecutorFactory executor_factory.ExecutorFactory
	Transform       CsvTransform
	BucketUrlScheme string
}

type Option func(*Usecases)

func WithCsvTransform(transform CsvTransform) Option {
	return func(u *Usecases) {
		u.Transform = transform
	}
}

func NewUsecases(repositories repositories.Repositories, bucketUrlScheme string, opts ...Option) Usecases {
	usecases := Usecases{
		Repositories:    repositories,
		ExecutorFactory: repositories.ExecutorGetter,
		Transform:       LineCountTransform{},
		BucketUrlScheme: bucketUrlScheme,
	}
	for _, opt := range opts {
		opt(&usecases)
	}
	return usecases
}

func (usecases Usecases) NewIngestUploadUsecase() IngestUploadUsecase {
	return IngestUploadUsecase{
		executorFactory:    usecases.ExecutorFactory,
		transactionFactory: usecases.Repositories.ExecutorGetter,
		uploadTracking:     usecases.Repositories.UploadTrackingRepository,
		taskQueue:          usecases.Repositories.TaskQueueRepository,
		acceptedExtension:  AcceptedUploadExtension,
	}
}

func (usecases Usecases) NewProcessUploadUsecase() ProcessUploadUsecase {
	return ProcessUploadUsecase{
		executorFactory: usecases.ExecutorFactory,
		uploadTracking:  usecases.Repositories.UploadTrackingRepository,
		blobRepository:  usecases.Repositories.BlobRepository,
		transform:       usecases.Transform,
		bucketUrlScheme: usecases.BucketUrlScheme,
	}
}

func (usecases Usecases) NewUploadStatusUsecase() UploadStatusUsecase {
	return UploadStatusUsecase{
		executorFactory: usecases.ExecutorFactory,
		uploadTracking:  usecases.Repositories.UploadTrackingRepository,
	}
}
