package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

// Reader returns the text content of the file at path.
type Reader interface {
	Read(ctx context.Context, path string) (string, error)
}

// LocalReader implements Reader for the local filesystem.
// It holds no mutable state and is safe for concurrent use.
type LocalReader struct {
	baseDir  string
	encName  string
	enc      encoding.Encoding
	maxBytes int64
}

// LocalOption configures a LocalReader.
type LocalOption func(*LocalReader) error

// WithBaseDir confines reads to dir. Relative paths are resolved against it.
func WithBaseDir(dir string) LocalOption {
	return func(r *LocalReader) error {
		if dir == "" {
			return ErrInvalidConfig
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
		}
		r.baseDir = abs
		return nil
	}
}

// WithEncoding selects the source encoding by its WHATWG name or label.
// An empty name keeps the UTF-8 default.
func WithEncoding(name string) LocalOption {
	return func(r *LocalReader) error {
		if name == "" {
			return nil
		}
		enc, err := LookupEncoding(name)
		if err != nil {
			return err
		}
		r.encName = strings.ToLower(name)
		r.enc = enc
		return nil
	}
}

// WithMaxSize rejects files larger than n bytes. Zero disables the limit.
func WithMaxSize(n int64) LocalOption {
	return func(r *LocalReader) error {
		if n < 0 {
			return ErrInvalidConfig
		}
		r.maxBytes = n
		return nil
	}
}

// NewLocalReader creates a UTF-8 reader and applies opts.
func NewLocalReader(opts ...LocalOption) (*LocalReader, error) {
	r := &LocalReader{encName: DefaultEncoding, enc: unicode.UTF8}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Encoding returns the configured encoding name.
func (r *LocalReader) Encoding() string {
	return r.encName
}

// Read returns the decoded content of path. A missing path yields an error
// matching both ErrFileNotFound and fs.ErrNotExist.
func (r *LocalReader) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	absPath, err := r.resolvePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", statError(path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if r.maxBytes > 0 && info.Size() > r.maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", statError(path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(transform.NewReader(f, r.decoder()))
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrFailedToDecode, r.encName, err)
	}

	return string(data), nil
}

// decoder validates UTF-8 input instead of replacing invalid bytes.
func (r *LocalReader) decoder() transform.Transformer {
	if name, err := htmlindex.Name(r.enc); err == nil && name == DefaultEncoding {
		return encoding.UTF8Validator
	}
	return r.enc.NewDecoder()
}

func (r *LocalReader) resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if r.baseDir == "" {
		return filepath.Clean(path), nil
	}

	absPath, err := filepath.Abs(filepath.Join(r.baseDir, filepath.Clean(path)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, r.baseDir+string(filepath.Separator)) && absPath != r.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}

func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	return fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
}

// LookupEncoding resolves a WHATWG encoding name or label such as "latin1".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}
