// Package skill discovers SKILL.md documents and turns each into a [Record].
//
// A skill is an immediate subdirectory of the skills root holding a file
// named exactly SKILL.md. The document's YAML frontmatter supplies the name,
// description and optional when_to_use fields; anything missing falls back
// to the directory name or to the first lines of the body.
//
// Header problems never fail discovery. I/O and encoding failures on a
// discovered document do, and abort the whole scan.
package skill
