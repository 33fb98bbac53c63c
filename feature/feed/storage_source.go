package feed

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"level-list/core/storage"
	"level-list/feature/feed/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// StorageSource loads sections from JSON documents named <prefix>/<type>.json.
// A missing document is an empty section.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source reading documents under prefix in bucket.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Name returns the source kind.
func (s *StorageSource) Name() string {
	return SourceStorage
}

// Check verifies the bucket is reachable.
func (s *StorageSource) Check(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// Key returns the object name of section type t.
func (s *StorageSource) Key(t int) string {
	return path.Join(s.prefix, strconv.Itoa(t)+".json")
}

// Load downloads and decodes the document of section type t.
// Rows without an id get one derived from the section type and their content.
func (s *StorageSource) Load(ctx context.Context, t int) (models.Section, error) {
	data, err := storage.ReadObject(ctx, s.client, s.bucket, s.Key(t))
	if errors.Is(err, storage.ErrNotFound) {
		return models.Section{}, nil
	}
	if err != nil {
		return models.Section{}, err
	}

	var sec models.Section
	if err := json.Unmarshal(data, &sec); err != nil {
		return models.Section{}, fmt.Errorf("failed to decode %s: %w", s.Key(t), err)
	}

	if sec.Header != nil && sec.Header.ID == 0 {
		sec.Header.ID = derivedID(t, "header", sec.Header.Title)
	}
	for i := range sec.Rows {
		if sec.Rows[i].ID == 0 {
			sec.Rows[i].ID = derivedID(t, strconv.Itoa(i), sec.Rows[i].Title)
		}
	}
	return sec, nil
}

// Types lists the section types that have a document, ascending.
func (s *StorageSource) Types(ctx context.Context) ([]int, error) {
	var types []int
	opts := minio.ListObjectsOptions{Prefix: s.prefix + "/", Recursive: false}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", s.prefix, obj.Err)
		}
		name := strings.TrimSuffix(path.Base(obj.Key), ".json")
		if name == path.Base(obj.Key) {
			continue
		}
		if t, err := strconv.Atoi(name); err == nil {
			types = append(types, t)
		}
	}
	sort.Ints(types)
	return types, nil
}

// derivedID returns a stable positive id for a row that has none.
func derivedID(t int, slot, title string) int64 {
	u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%d/%s/%s", t, slot, title)))
	return int64(binary.BigEndian.Uint64(u[:8]) >> 1)
}
