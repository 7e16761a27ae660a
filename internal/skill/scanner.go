package skill

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillindex/internal/errors"
	"github.com/thoreinstein/skillindex/internal/logging"
)

// Scanner locates skills under a root directory.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner creates a Scanner that logs to logger.
// A nil logger discards all output.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Scanner{logger: logger}
}

// Scan returns a record for every immediate subdirectory of root that holds
// a SKILL.md file, sorted by name. A missing root yields no records and no
// error. Any failure reading a discovered document aborts the scan.
func (s *Scanner) Scan(root string) ([]Record, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("skills directory does not exist", "root", root)
			return []Record{}, nil
		}
		return nil, errors.Wrapf(err, "reading skills directory %s", root)
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())

		// Stat follows symlinked skill directories
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			s.logger.Log(context.Background(), logging.LevelTrace, "skipping non-directory entry", "path", dir)
			continue
		}

		docPath := filepath.Join(dir, FileName)
		if doc, err := os.Stat(docPath); err != nil || !doc.Mode().IsRegular() {
			s.logger.Log(context.Background(), logging.LevelTrace, "skipping directory without skill document", "path", dir)
			continue
		}

		record, err := ExtractFile(dir, s.logger)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("discovered skill", "name", record.Name, "path", dir)
		records = append(records, record)
	}

	SortRecords(records)
	s.logger.Info("scanned skills directory", "root", root, "skills", len(records))
	return records, nil
}
