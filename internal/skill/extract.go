package skill

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillindex/internal/errors"
	"github.com/thoreinstein/skillindex/internal/logging"
	"github.com/thoreinstein/skillindex/pkg/fileutil"
	"github.com/thoreinstein/skillindex/pkg/frontmatter"
)

// FileName is the marker document every skill directory must contain.
const FileName = "SKILL.md"

// NoDescription is used when neither the header nor the body yields a description.
const NoDescription = "No description available"

// Header keys read from the frontmatter.
const (
	keyName        = "name"
	keyDescription = "description"
	keyWhenToUse   = "when_to_use"
)

// maxSummaryLines bounds the body-derived description.
const maxSummaryLines = 3

// Extract builds the record for the skill in dir from its SKILL.md content.
// A missing or malformed header is treated as empty; malformed headers are
// logged at debug level. A nil logger discards output.
func Extract(dir string, content []byte, logger *slog.Logger) Record {
	header, body, err := frontmatter.ParseMap(content)
	if err != nil && !errors.Is(err, frontmatter.ErrNoFrontmatter) {
		if logger == nil {
			logger = logging.NewDiscard()
		}
		logger.Debug("ignoring skill header", "path", filepath.Join(dir, FileName), "error", err)
	}
	return newRecord(dir, header, body)
}

// ExtractFile reads dir/SKILL.md and builds its record. Read and encoding
// failures are returned; header problems are not.
func ExtractFile(dir string, logger *slog.Logger) (Record, error) {
	docPath := filepath.Join(dir, FileName)
	content, err := fileutil.ReadTextFile(docPath)
	if err != nil {
		return Record{}, errors.Wrapf(err, "loading skill %s", docPath)
	}
	return Extract(dir, content, logger), nil
}

func newRecord(dir string, header map[string]any, body []byte) Record {
	r := Record{
		Name:         resolveName(header, filepath.Base(dir)),
		Path:         dir,
		DocumentPath: filepath.Join(dir, FileName),
		Description:  Describe(header, body),
		Directory:    filepath.Base(dir),
	}
	if v, ok := header[keyWhenToUse]; ok && v != nil {
		r.WhenToUse = v
	}
	return r
}

func resolveName(header map[string]any, fallback string) string {
	if v, ok := header[keyName]; ok {
		if name := FormatValue(v); strings.TrimSpace(name) != "" {
			return name
		}
	}
	return fallback
}

// Describe resolves a skill's description: the header's description when
// set, else the first three content lines of body joined by spaces, else
// NoDescription. Each "---" line opens or closes a hidden section; the
// delimiter lines, everything between a pair, blank lines and headings are
// not content.
func Describe(header map[string]any, body []byte) string {
	if v, ok := header[keyDescription]; ok && v != nil {
		return FormatValue(v)
	}

	var lines []string
	hidden := false
	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == frontmatter.Delimiter {
			hidden = !hidden
			continue
		}
		if hidden || trimmed == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, trimmed)
		if len(lines) == maxSummaryLines {
			break
		}
	}

	if len(lines) == 0 {
		return NoDescription
	}
	return strings.Join(lines, " ")
}
