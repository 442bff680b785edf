package pantry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pantry-pal/core/storage"
	"pantry-pal/feature/pantry/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Store is the persistence boundary for the inventory.
//
// Load returns the last-persisted inventory, or an empty one when nothing has
// been stored yet or the stored blob is unparseable; a read problem is never
// surfaced as an error. Save replaces the entire stored blob; write failures
// are returned to the caller.
type Store interface {
	Load(ctx context.Context) (models.Inventory, error)
	Save(ctx context.Context, inv models.Inventory) error
}

// document is the persisted shape of the inventory blob. The nesting matches
// the pantry.json layout the mobile app produced, so existing blobs load
// as-is.
type document struct {
	Pantry struct {
		Items models.Inventory `json:"items"`
	} `json:"pantry"`
}

func encodeDocument(inv models.Inventory) ([]byte, error) {
	var doc document
	doc.Pantry.Items = inv
	if doc.Pantry.Items == nil {
		doc.Pantry.Items = models.NewInventory()
	}
	return json.MarshalIndent(doc, "", "  ")
}

func decodeDocument(data []byte) (models.Inventory, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Pantry.Items == nil {
		return models.NewInventory(), nil
	}
	return doc.Pantry.Items, nil
}

// fileStore keeps the inventory blob in a local JSON file.
type fileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a Store backed by a JSON file at path.
func NewFileStore(path string, logger *zap.Logger) Store {
	return &fileStore{path: path, logger: logger}
}

func (s *fileStore) Load(_ context.Context) (models.Inventory, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Missing file is the first-use case; anything else is recovered
		// the same way with an empty inventory.
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read pantry file, starting empty", zap.Error(err))
		}
		return models.NewInventory(), nil
	}

	inv, err := decodeDocument(data)
	if err != nil {
		s.logger.Warn("Corrupt pantry file, starting empty", zap.String("path", s.path), zap.Error(err))
		return models.NewInventory(), nil
	}
	return inv, nil
}

func (s *fileStore) Save(_ context.Context, inv models.Inventory) error {
	data, err := encodeDocument(inv)
	if err != nil {
		return fmt.Errorf("failed to encode pantry: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write pantry file: %w", err)
	}
	return nil
}

// objectStore keeps the inventory blob in an S3/MinIO bucket.
type objectStore struct {
	client storage.Client
	bucket string
	object string
	logger *zap.Logger
}

// NewObjectStore creates a Store backed by an object storage bucket,
// creating the bucket if it does not exist yet.
func NewObjectStore(ctx context.Context, client storage.Client, bucket, object string, logger *zap.Logger) (Store, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		logger.Info("Created pantry bucket", zap.String("bucket", bucket))
	}
	return &objectStore{client: client, bucket: bucket, object: object, logger: logger}, nil
}

func (s *objectStore) Load(ctx context.Context) (models.Inventory, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return models.NewInventory(), nil
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		// Covers both a missing object and a transfer error.
		return models.NewInventory(), nil
	}

	inv, err := decodeDocument(data)
	if err != nil {
		s.logger.Warn("Corrupt pantry object, starting empty", zap.String("object", s.object), zap.Error(err))
		return models.NewInventory(), nil
	}
	return inv, nil
}

func (s *objectStore) Save(ctx context.Context, inv models.Inventory) error {
	data, err := encodeDocument(inv)
	if err != nil {
		return fmt.Errorf("failed to encode pantry: %w", err)
	}

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		s.object,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to write pantry object: %w", err)
	}
	return nil
}
