package repositories

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/uplox/uploads-backend/models"
	"github.com/uplox/uploads-backend/utils"
)

const blobOpenTimeout = 10 * time.Second

type BlobRepository interface {
	GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error)
}

type blobRepository struct {
	m       sync.Mutex
	buckets map[string]*blob.Bucket
}

func NewBlobRepository() BlobRepository {
	return &blobRepository{
		buckets: make(map[string]*blob.Bucket),
	}
}

func (repository *blobRepository) openBlobBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	repository.m.Lock()
	defer repository.m.Unlock()

	if repository.buckets[bucketUrl] == nil {
		if _, err := url.Parse(bucketUrl); err != nil {
			return nil, errors.Wrapf(err, "failed to parse bucket url %s", bucketUrl)
		}

		openCtx, cancel := context.WithTimeout(ctx, blobOpenTimeout)
		defer cancel()

		bucket, err := blob.OpenBucket(openCtx, bucketUrl)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", bucketUrl)
		}

		ok, err := bucket.IsAccessible(openCtx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check bucket accessibility %s", bucketUrl)
		} else if !ok {
			return nil, errors.Newf("bucket %s is not accessible", bucketUrl)
		}

		repository.buckets[bucketUrl] = bucket
	}
	return repository.buckets[bucketUrl], nil
}

func (repository *blobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"repositories.BlobRepository.GetBlob",
		trace.WithAttributes(attribute.String("bucket", bucketUrl)),
		trace.WithAttributes(attribute.String("fileName", fileName)),
	)
	defer span.End()

	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return models.Blob{}, err
	}

	ok, err := bucket.Exists(ctx, fileName)
	if err != nil {
		return models.Blob{}, errors.Wrapf(err, "failed to check if file %s exists in bucket %s", fileName, bucketUrl)
	} else if !ok {
		return models.Blob{}, errors.Wrapf(
			models.NotFoundError,
			"file %s does not exist in bucket %s", fileName, bucketUrl,
		)
	}

	reader, err := bucket.NewReader(ctx, fileName, nil)
	if err != nil {
		return models.Blob{}, errors.Wrapf(err, "failed to read object %s/%s", bucketUrl, fileName)
	}

	return models.Blob{FileName: fileName, ReadCloser: reader}, nil
}
