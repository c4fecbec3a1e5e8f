// Package mmap provides read-only memory-mapped access to configuration
// buffers. A Reader exclusively owns both the open file and its mapping and
// releases them together, exactly once.
package mmap

import (
	"math"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
	"github.com/ajitpratap0/comconfig/pkg/logger"
)

// Reader provides zero-copy access to a read-only private file mapping.
type Reader struct {
	path     string
	file     *os.File
	data     []byte
	fileSize int64

	closeOnce sync.Once
	closeErr  error
	mu        sync.RWMutex
}

// Open maps the file at path read-only for its full size. It fails if the
// file cannot be opened or stat'ed, is empty, or cannot be mapped.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path is the deployment descriptor chosen by the caller
	if err != nil {
		return nil, cfgerrors.Wrap(err, cfgerrors.ErrorTypeFile, "failed to open FlatBuffer file").
			WithDetail("path", path)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, cfgerrors.Wrap(err, cfgerrors.ErrorTypeFile, "failed to stat FlatBuffer file").
			WithDetail("path", path)
	}

	fileSize := stat.Size()
	if fileSize == 0 {
		file.Close()
		return nil, cfgerrors.New(cfgerrors.ErrorTypeFile, "FlatBuffer file is empty").
			WithDetail("path", path)
	}
	if fileSize > math.MaxInt32 {
		file.Close()
		return nil, cfgerrors.New(cfgerrors.ErrorTypeFile, "FlatBuffer file exceeds 2 GiB").
			WithDetail("path", path).
			WithDetail("size", fileSize)
	}

	data, err := mmap(int(file.Fd()), 0, int(fileSize), ProtRead, MapPrivate)
	if err != nil {
		file.Close()
		return nil, cfgerrors.Wrap(err, cfgerrors.ErrorTypeFile, "failed to mmap FlatBuffer file").
			WithDetail("path", path)
	}

	// The whole buffer is walked by the verifier right away.
	if err := madvise(data, MadvWillneed); err != nil {
		logger.Debug("madvise failed", zap.String("path", path), zap.Error(err))
	}

	return &Reader{
		path:     path,
		file:     file,
		data:     data,
		fileSize: fileSize,
	}, nil
}

// Bytes returns the mapped region. The slice is only valid until Close and
// must never be written to; it is nil after Close.
func (r *Reader) Bytes() []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data
}

// Size returns the mapped size in bytes.
func (r *Reader) Size() int64 {
	return r.fileSize
}

// Path returns the path the mapping was created from.
func (r *Reader) Path() string {
	return r.path
}

// Close unmaps the file and closes it. Subsequent calls return the result
// of the first one without touching the OS again.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		if r.data != nil {
			if err := munmap(r.data); err != nil {
				r.closeErr = cfgerrors.Wrap(err, cfgerrors.ErrorTypeFile, "failed to munmap FlatBuffer file").
					WithDetail("path", r.path)
			}
			r.data = nil
		}

		if r.file != nil {
			if err := r.file.Close(); err != nil && r.closeErr == nil {
				r.closeErr = cfgerrors.Wrap(err, cfgerrors.ErrorTypeFile, "failed to close FlatBuffer file").
					WithDetail("path", r.path)
			}
			r.file = nil
		}
	})
	return r.closeErr
}
