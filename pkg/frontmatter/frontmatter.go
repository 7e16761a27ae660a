package frontmatter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillindex/internal/errors"
)

// Delimiter is the line that opens and closes a frontmatter header.
const Delimiter = "---"

// Sentinel errors returned by ParseMap.
var (
	// ErrNoFrontmatter indicates the document does not begin with a delimiter line.
	ErrNoFrontmatter = errors.New("no frontmatter")
	// ErrUnterminated indicates the closing delimiter line was never found.
	ErrUnterminated = errors.New("missing closing frontmatter delimiter")
	// ErrInvalidYAML indicates the header could not be decoded as a YAML mapping.
	ErrInvalidYAML = errors.New("invalid frontmatter YAML")
)

// IsDelimiter reports whether line is exactly "---", ignoring a trailing CR.
func IsDelimiter(line []byte) bool {
	return string(bytes.TrimSuffix(line, []byte("\r"))) == Delimiter
}

// Split separates the header region from the body.
// ok is false when the document has no opening delimiter or the header is
// never closed; body is then the whole document.
func Split(content []byte) (header, body []byte, ok bool) {
	first, rest, found := bytes.Cut(content, []byte("\n"))
	if !IsDelimiter(first) || !found {
		return nil, content, false
	}

	offset := 0
	for offset <= len(rest) {
		line, _, more := bytes.Cut(rest[offset:], []byte("\n"))
		if IsDelimiter(line) {
			end := offset + len(line)
			if more {
				end++
			}
			return rest[:offset], rest[end:], true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}

	return nil, content, false
}

// ParseMap splits content and decodes the header as a YAML mapping.
// The returned body is valid even when err is non-nil.
func ParseMap(content []byte) (map[string]any, []byte, error) {
	header, body, ok := Split(content)
	if !ok {
		if !IsDelimiter(firstLine(content)) {
			return map[string]any{}, body, ErrNoFrontmatter
		}
		return map[string]any{}, body, ErrUnterminated
	}

	var matter map[string]any
	if err := yaml.Unmarshal(header, &matter); err != nil {
		return map[string]any{}, body, errors.Wrapf(ErrInvalidYAML, "%v", err)
	}
	if matter == nil {
		matter = map[string]any{}
	}

	for k, v := range matter {
		matter[k] = normalize(v)
	}

	return matter, body, nil
}

func firstLine(content []byte) []byte {
	line, _, _ := bytes.Cut(content, []byte("\n"))
	return line
}

// normalize converts maps with non-string keys so the result can be encoded
// as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			t[k] = normalize(inner)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[fmt.Sprint(k)] = normalize(inner)
		}
		return out
	case []any:
		for i, inner := range t {
			t[i] = normalize(inner)
		}
		return t
	default:
		return v
	}
}
