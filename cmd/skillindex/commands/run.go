package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/thoreinstein/skillindex/internal/catalog"
	"github.com/thoreinstein/skillindex/internal/config"
	"github.com/thoreinstein/skillindex/internal/errors"
	"github.com/thoreinstein/skillindex/internal/logging"
	"github.com/thoreinstein/skillindex/internal/skill"
)

// Run scans cfg.SkillsDir, prints one rendering of the catalog to w and
// rewrites the index file. Output is printed before the index is written.
func Run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	logger := logging.FromContext(ctx)

	records, err := skill.NewScanner(logger).Scan(cfg.SkillsDir)
	if err != nil {
		return errors.NewSystemError(err, "Check that every SKILL.md is readable UTF-8 text")
	}

	var out string
	if cfg.StructuredOutput {
		data, err := catalog.MarshalJSON(records)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		out = string(data)
	} else {
		out = catalog.Listing(records, cfg.DisplayRoot)
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing output"), "")
	}

	if err := catalog.WriteIndex(cfg.IndexPath, records, cfg.DisplayRoot); err != nil {
		return errors.NewSystemError(err, "Check write permissions for "+filepath.Dir(cfg.IndexPath))
	}
	logger.Info("wrote skills index", "path", cfg.IndexPath, "skills", len(records))

	return nil
}
