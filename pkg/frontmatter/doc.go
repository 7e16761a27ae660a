// Package frontmatter isolates and decodes YAML frontmatter in markdown
// documents such as SKILL.md.
//
// A document has frontmatter only when its very first line is exactly "---".
// The header runs until the next line that is exactly "---"; everything after
// that closing line is the body. A trailing carriage return on a delimiter
// line is tolerated so CRLF files behave like LF files.
//
// # Basic Usage
//
//	header, body, err := frontmatter.ParseMap(content)
//	if errors.Is(err, frontmatter.ErrNoFrontmatter) {
//		// the whole document is body
//	}
//
// # Partial Results
//
// [ParseMap] always returns a non-nil header map and the body, even alongside
// an error. Callers that must keep going past one malformed document can treat
// any error as an empty header.
//
// # Errors
//
//   - [ErrNoFrontmatter]: the document does not start with "---"
//   - [ErrUnterminated]: the opening "---" has no matching closing line
//   - [ErrInvalidYAML]: the header is not a YAML mapping
package frontmatter
