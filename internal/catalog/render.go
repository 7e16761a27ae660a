package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/thoreinstein/skillindex/internal/errors"
	"github.com/thoreinstein/skillindex/internal/skill"
	"github.com/thoreinstein/skillindex/pkg/fileutil"
)

// Fixed markdown text.
const (
	ListingTitle = "## Available Skills"
	IndexTitle   = "# Skills Index"
	EmptyListing = "No skills found."
)

// MarshalJSON encodes records as a two-space indented JSON array without a
// trailing newline. An empty or nil catalog encodes as [].
func MarshalJSON(records []skill.Record) ([]byte, error) {
	if records == nil {
		records = []skill.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, errors.Wrap(err, "encoding skills as JSON")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Listing renders records as the markdown listing. Path lines are
// displayRoot-relative.
func Listing(records []skill.Record, displayRoot string) string {
	if len(records) == 0 {
		return EmptyListing
	}

	lines := []string{ListingTitle + "\n"}
	for _, r := range records {
		lines = append(lines,
			"### "+r.Name,
			fmt.Sprintf("**Path**: `%s`", displayPath(displayRoot, r.Directory)),
			"**Description**: "+r.Description,
		)
		if r.HasWhenToUse() {
			lines = append(lines, "**When to use**: "+skill.FormatValue(r.WhenToUse))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// Index renders the full SKILLS_INDEX.md content.
func Index(records []skill.Record, displayRoot string) string {
	var sb strings.Builder
	sb.WriteString(IndexTitle + "\n\n")
	fmt.Fprintf(&sb, "Total skills: %d\n\n", len(records))
	sb.WriteString(Listing(records, displayRoot))
	return sb.String()
}

// WriteIndex replaces the file at path with the rendered index.
// An existing file keeps its permission bits.
func WriteIndex(path string, records []skill.Record, displayRoot string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
	}

	if err := fileutil.AtomicWriteFile(path, []byte(Index(records, displayRoot)), perm); err != nil {
		return errors.Wrapf(err, "writing index %s", path)
	}
	return nil
}

func displayPath(root, dir string) string {
	if root == "" {
		return dir + "/"
	}
	return strings.TrimSuffix(root, "/") + "/" + dir + "/"
}
