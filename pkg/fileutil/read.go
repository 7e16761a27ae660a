package fileutil

import (
	"os"
	"unicode/utf8"

	"github.com/thoreinstein/skillindex/internal/errors"
)

// ReadTextFile reads the whole file at path and checks that it is valid UTF-8.
// Invalid content is reported as errors.ErrInvalidEncoding.
func ReadTextFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if !utf8.Valid(data) {
		return nil, errors.Wrapf(errors.ErrInvalidEncoding, "decoding %s", path)
	}

	return data, nil
}
