package catalog

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillindex/internal/skill"
)

func alphaRecord() skill.Record {
	return skill.Record{
		Name:         "Alpha Skill",
		Path:         "/repo/.windsurf/skills/alpha",
		DocumentPath: "/repo/.windsurf/skills/alpha/SKILL.md",
		Description:  "Does alpha things",
		Directory:    "alpha",
	}
}

func betaRecord() skill.Record {
	return skill.Record{
		Name:         "beta",
		Path:         "/repo/.windsurf/skills/beta",
		DocumentPath: "/repo/.windsurf/skills/beta/SKILL.md",
		Description:  "First line. Second line. Third.",
		Directory:    "beta",
		WhenToUse:    "Writing <tests> & fixtures",
	}
}

func TestListing(t *testing.T) {
	got := Listing([]skill.Record{alphaRecord(), betaRecord()}, ".windsurf/skills")

	want := "## Available Skills\n" +
		"\n" +
		"### Alpha Skill\n" +
		"**Path**: `.windsurf/skills/alpha/`\n" +
		"**Description**: Does alpha things\n" +
		"\n" +
		"### beta\n" +
		"**Path**: `.windsurf/skills/beta/`\n" +
		"**Description**: First line. Second line. Third.\n" +
		"**When to use**: Writing <tests> & fixtures\n"
	assert.Equal(t, want, got)
}

func TestListing_OmitsWhenToUse(t *testing.T) {
	got := Listing([]skill.Record{alphaRecord()}, ".windsurf/skills")

	assert.Contains(t, got, "### Alpha Skill")
	assert.Contains(t, got, "`.windsurf/skills/alpha/`")
	assert.Contains(t, got, "**Description**: Does alpha things")
	assert.NotContains(t, got, "When to use")
}

func TestListing_ListWhenToUse(t *testing.T) {
	r := alphaRecord()
	r.WhenToUse = []any{"reviewing", "refactoring"}

	assert.Contains(t, Listing([]skill.Record{r}, "skills"), "**When to use**: reviewing, refactoring\n")
}

func TestListing_Empty(t *testing.T) {
	assert.Equal(t, EmptyListing, Listing(nil, ".windsurf/skills"))
	assert.Equal(t, EmptyListing, Listing([]skill.Record{}, ".windsurf/skills"))
}

func TestListing_EmptyDisplayRoot(t *testing.T) {
	assert.Contains(t, Listing([]skill.Record{alphaRecord()}, ""), "**Path**: `alpha/`")
}

func TestIndex(t *testing.T) {
	got := Index([]skill.Record{alphaRecord()}, ".windsurf/skills")

	require.True(t, strings.HasPrefix(got, "# Skills Index\n\nTotal skills: 1\n\n## Available Skills\n"), got)
	assert.True(t, strings.HasSuffix(got, "**Description**: Does alpha things\n"), got)
}

func TestIndex_Empty(t *testing.T) {
	assert.Equal(t, "# Skills Index\n\nTotal skills: 0\n\nNo skills found.", Index(nil, "skills"))
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON([]skill.Record{alphaRecord(), betaRecord()})
	require.NoError(t, err)

	want := `[
  {
    "name": "Alpha Skill",
    "path": "/repo/.windsurf/skills/alpha",
    "document_path": "/repo/.windsurf/skills/alpha/SKILL.md",
    "description": "Does alpha things",
    "directory": "alpha"
  },
  {
    "name": "beta",
    "path": "/repo/.windsurf/skills/beta",
    "document_path": "/repo/.windsurf/skills/beta/SKILL.md",
    "description": "First line. Second line. Third.",
    "directory": "beta",
    "when_to_use": "Writing <tests> & fixtures"
  }
]`
	assert.Equal(t, want, string(data))
}

func TestMarshalJSON_Empty(t *testing.T) {
	data, err := MarshalJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMarshalJSON_NestedWhenToUse(t *testing.T) {
	r := alphaRecord()
	r.WhenToUse = map[string]any{"triggers": []any{"review", "audit"}}

	data, err := MarshalJSON([]skill.Record{r})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"when_to_use\": {\n      \"triggers\": [\n        \"review\",\n        \"audit\"\n      ]\n    }")
}

func TestWriteIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SKILLS_INDEX.md")
	records := []skill.Record{alphaRecord(), betaRecord()}

	require.NoError(t, WriteIndex(path, records, ".windsurf/skills"))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Index(records, ".windsurf/skills"), string(first))

	require.NoError(t, WriteIndex(path, records, ".windsurf/skills"))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "index output should be byte-identical across runs")
}

func TestWriteIndex_OverwritesAndKeepsPerm(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on windows")
	}

	path := filepath.Join(t.TempDir(), "SKILLS_INDEX.md")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("old\n", 100)), 0o600))

	require.NoError(t, WriteIndex(path, nil, "skills"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Skills Index\n\nTotal skills: 0\n\nNo skills found.", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteIndex_UnwritableLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "SKILLS_INDEX.md")

	err := WriteIndex(path, nil, "skills")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing index")
}
