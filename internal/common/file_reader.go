package common

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileReader handles file reading operations
type FileReader struct {
	logger zerolog.Logger
}

// NewFileReader creates a new FileReader instance
func NewFileReader(logger zerolog.Logger) *FileReader {
	return &FileReader{
		logger: logger.With().Str("component", "FileReader").Logger(),
	}
}

// ReadFile reads a file, honouring the size limit and timeout in opts
func (fr *FileReader) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	ctx, cancel := fr.setupContextWithTimeout(opts)
	if cancel != nil {
		defer cancel()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, WrapError(err, "failed to open file: "+path)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fr.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		defer close(done)
		var reader io.Reader = file
		if opts.MaxSize > 0 {
			reader = io.LimitReader(file, opts.MaxSize)
		}
		content, readErr = io.ReadAll(reader)
	}()

	select {
	case <-ctx.Done():
		fr.logger.Warn().Str("path", path).Msg("File read cancelled due to context timeout")
		return nil, WrapError(ctx.Err(), "file read operation cancelled")
	case <-done:
		if readErr != nil {
			return nil, WrapError(readErr, "failed to read file content: "+path)
		}
	}

	return content, nil
}

// setupContextWithTimeout sets up context with timeout if specified
func (fr *FileReader) setupContextWithTimeout(opts FileReadOptions) (context.Context, context.CancelFunc) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, nil
}
