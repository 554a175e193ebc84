// Package blob stores drop payloads in a gocloud.dev bucket under content
// addresses.
package blob

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"zumap/config"
	"zumap/internal/domain/entity"
	domainerrors "zumap/internal/domain/errors"
	"zumap/internal/domain/service"
	"zumap/internal/errors"
	"zumap/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

var mimeTypes = map[entity.ContentType]string{
	entity.ContentTypeImage: "image/jpeg",
	entity.ContentTypePDF:   "application/pdf",
	entity.ContentTypeText:  "text/plain; charset=utf-8",
}

type contentStore struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on stop.
func New(params Params) (service.ContentStore, error) {
	bucketURL := params.Config.Blob.BucketURL
	if bucketURL == "" {
		bucketURL = defaultBucketURL
		params.Logger.Warn("No blob bucket configured, drop content is kept in memory")
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewContentStore(bucket, params.Config.Blob.Prefix, params.Logger), nil
}

// NewContentStore wraps an open bucket.
func NewContentStore(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.ContentStore {
	return &contentStore{
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Put stores data under "<prefix><sha256>.<ext>". Existing keys are not rewritten.
func (s *contentStore) Put(ctx context.Context, data []byte, contentType entity.ContentType) (string, error) {
	key := s.prefix + util.ContentChecksum(data)
	if ext := contentType.FileExtension(); ext != "" {
		key += "." + ext
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to check content")
	}
	if exists {
		s.logger.DebugContext(ctx, "Content already stored", slog.String("key", key))

		return key, nil
	}

	opts := &blob.WriterOptions{ContentType: mimeTypes[contentType]}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write content")
	}

	return key, nil
}

// Open streams a payload.
func (s *contentStore) Open(ctx context.Context, key string) (io.ReadCloser, *service.ContentInfo, error) {
	if !s.validKey(key) {
		return nil, nil, domainerrors.ErrContentNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, domainerrors.ErrContentNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to open content")
	}

	return reader, &service.ContentInfo{
		Key:         key,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// DeleteAll removes every object under the prefix.
func (s *contentStore) DeleteAll(ctx context.Context) error {
	iter := s.bucket.List(&blob.ListOptions{Prefix: s.prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to list content")
		}
		if obj.IsDir {
			continue
		}
		if err := s.bucket.Delete(ctx, obj.Key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "failed to delete %s", obj.Key)
		}
	}
}

func (s *contentStore) validKey(key string) bool {
	if key == "" || !strings.HasPrefix(key, s.prefix) {
		return false
	}

	return !strings.Contains(key, "..") && !strings.HasPrefix(key, "/")
}
