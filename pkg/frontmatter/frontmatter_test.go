package frontmatter

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHeader string
		wantBody   string
		wantOK     bool
	}{
		{
			name:       "header and body",
			input:      "---\nname: alpha\n---\nBody text here.\n",
			wantHeader: "name: alpha\n",
			wantBody:   "Body text here.\n",
			wantOK:     true,
		},
		{
			name:       "crlf delimiters",
			input:      "---\r\nname: alpha\r\n---\r\nBody\r\n",
			wantHeader: "name: alpha\r\n",
			wantBody:   "Body\r\n",
			wantOK:     true,
		},
		{
			name:       "empty header",
			input:      "---\n---\nBody",
			wantHeader: "",
			wantBody:   "Body",
			wantOK:     true,
		},
		{
			name:       "closing delimiter at end of file",
			input:      "---\nname: alpha\n---",
			wantHeader: "name: alpha\n",
			wantBody:   "",
			wantOK:     true,
		},
		{
			name:     "no header",
			input:    "# Title\n\nText",
			wantBody: "# Title\n\nText",
		},
		{
			name:     "leading blank line is not a header",
			input:    "\n---\nname: alpha\n---\n",
			wantBody: "\n---\nname: alpha\n---\n",
		},
		{
			name:     "opening line with extra text",
			input:    "--- yaml\nname: alpha\n---\n",
			wantBody: "--- yaml\nname: alpha\n---\n",
		},
		{
			name:     "unterminated header",
			input:    "---\nname: alpha\nBody",
			wantBody: "---\nname: alpha\nBody",
		},
		{
			name:       "indented dashes do not close",
			input:      "---\nname: alpha\n  ---\n---\nBody",
			wantHeader: "name: alpha\n  ---\n",
			wantBody:   "Body",
			wantOK:     true,
		},
		{
			name:       "body keeps later rules",
			input:      "---\nname: alpha\n---\nOne\n---\nTwo\n",
			wantHeader: "name: alpha\n",
			wantBody:   "One\n---\nTwo\n",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body, ok := Split([]byte(tt.input))
			if ok != tt.wantOK {
				t.Fatalf("Split() ok = %v, want %v", ok, tt.wantOK)
			}
			if string(header) != tt.wantHeader {
				t.Errorf("Split() header = %q, want %q", header, tt.wantHeader)
			}
			if string(body) != tt.wantBody {
				t.Errorf("Split() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseMap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKeys map[string]any
		wantBody string
		wantErr  error
	}{
		{
			name:     "scalar fields",
			input:    "---\nname: Alpha Skill\ndescription: Does alpha things\n---\nBody text here.\n",
			wantKeys: map[string]any{"name": "Alpha Skill", "description": "Does alpha things"},
			wantBody: "Body text here.\n",
		},
		{
			name:     "no frontmatter",
			input:    "First line.\nSecond line.\n",
			wantKeys: map[string]any{},
			wantBody: "First line.\nSecond line.\n",
			wantErr:  ErrNoFrontmatter,
		},
		{
			name:     "unterminated",
			input:    "---\nname: alpha\n",
			wantKeys: map[string]any{},
			wantBody: "---\nname: alpha\n",
			wantErr:  ErrUnterminated,
		},
		{
			name:     "invalid yaml keeps body",
			input:    "---\nname: [unclosed\n---\nAfter header\n",
			wantKeys: map[string]any{},
			wantBody: "After header\n",
			wantErr:  ErrInvalidYAML,
		},
		{
			name:     "sequence instead of mapping",
			input:    "---\n- one\n- two\n---\nBody\n",
			wantKeys: map[string]any{},
			wantBody: "Body\n",
			wantErr:  ErrInvalidYAML,
		},
		{
			name:     "empty header",
			input:    "---\n---\nBody\n",
			wantKeys: map[string]any{},
			wantBody: "Body\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matter, body, err := ParseMap([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMap() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("ParseMap() unexpected error = %v", err)
			}

			if matter == nil {
				t.Fatal("ParseMap() returned nil map")
			}
			if len(matter) != len(tt.wantKeys) {
				t.Errorf("ParseMap() got %d keys, want %d: %v", len(matter), len(tt.wantKeys), matter)
			}
			for k, want := range tt.wantKeys {
				if got := matter[k]; got != want {
					t.Errorf("ParseMap()[%q] = %v, want %v", k, got, want)
				}
			}
			if string(body) != tt.wantBody {
				t.Errorf("ParseMap() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseMap_NestedValuesEncodeAsJSON(t *testing.T) {
	input := "---\nname: nested\nwhen_to_use:\n  - reviewing code\n  - writing tests\nmeta:\n  1: one\n  tags: [a, b]\n---\n"

	matter, _, err := ParseMap([]byte(input))
	if err != nil {
		t.Fatalf("ParseMap() error = %v", err)
	}

	data, err := json.Marshal(matter)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"meta":{"1":"one","tags":["a","b"]},"name":"nested","when_to_use":["reviewing code","writing tests"]}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
