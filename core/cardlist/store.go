package cardlist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"mtg-utils/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotExist is returned when a list is not present in a store.
var ErrNotExist = fs.ErrNotExist

// Store persists card lists by name.
type Store interface {
	// Read loads and parses the named list.
	Read(ctx context.Context, name string) (List, error)
	// Write replaces the named list.
	Write(ctx context.Context, name string, list List) error
	// Exists reports whether the named list is present.
	Exists(ctx context.Context, name string) (bool, error)
}

// FileStore keeps lists as files. Relative names resolve against Root.
type FileStore struct {
	Root string
}

// NewFileStore creates a store rooted at root ("" means the working directory).
func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

func (s *FileStore) path(name string) string {
	if filepath.IsAbs(name) || s.Root == "" {
		return name
	}
	return filepath.Join(s.Root, name)
}

// Read loads and parses the named file.
func (s *FileStore) Read(ctx context.Context, name string) (List, error) {
	p := s.path(name)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("card list %s: %w", p, ErrNotExist)
		}
		return nil, fmt.Errorf("failed to open %s: %w", p, err)
	}
	defer f.Close()
	return Parse(f, p)
}

// Write replaces the named file, creating parent directories.
func (s *FileStore) Write(ctx context.Context, name string, list List) error {
	p := s.path(name)
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, list); err != nil {
		return err
	}
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return nil
}

// Exists reports whether the named file is present.
func (s *FileStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ObjectStore keeps lists as text objects in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates a store writing under prefix in bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *ObjectStore) key(name string) string {
	return path.Join(s.prefix, filepath.ToSlash(name))
}

// Read downloads and parses the named object.
func (s *ObjectStore) Read(ctx context.Context, name string) (List, error) {
	key := s.key(name)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap(key, err)
	}
	defer obj.Close()

	list, err := Parse(obj, s.bucket+"/"+key)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, s.wrap(key, err)
	}
	return list, nil
}

// Write uploads the list, replacing any existing object.
func (s *ObjectStore) Write(ctx context.Context, name string, list List) error {
	var buf bytes.Buffer
	if err := Write(&buf, list); err != nil {
		return err
	}
	key := s.key(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Exists reports whether the named object is present.
func (s *ObjectStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.key(name), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if storage.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func (s *ObjectStore) wrap(key string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("card list %s/%s: %w", s.bucket, key, ErrNotExist)
	}
	return fmt.Errorf("failed to read %s/%s: %w", s.bucket, key, err)
}
