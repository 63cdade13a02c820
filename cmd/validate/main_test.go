package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorld(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestIsValidWorldFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"midterm_madness", true},
		{"x.draft_world", true},
		{"a", true},
		{"Midterm", false},
		{"mid-term", false},
		{"trailing_", false},
		{"9lives", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidWorldFilename(tt.name))
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		body       string
		wantStatus string
		wantErr    string
	}{
		{
			name:       "clean",
			file:       "yard.json",
			body:       `{"title": "Yard", "start_location": "Yard", "end_locations": ["Yard"], "locations": [{"name": "Yard", "accessible": true}]}`,
			wantStatus: "ok",
		},
		{
			name:       "audit warnings",
			file:       "loose.yaml",
			body:       "start_location: Yard\nlocations:\n  - name: Yard\n",
			wantStatus: "warnings",
		},
		{
			name:       "unknown field",
			file:       "typo.json",
			body:       `{"start_location": "Yard", "locations": [{"name": "Yard"}], "turnlimit": 3}`,
			wantStatus: "invalid",
			wantErr:    "turnlimit",
		},
		{
			name:       "bad start",
			file:       "broken.json",
			body:       `{"start_location": "Nowhere", "locations": [{"name": "Yard"}]}`,
			wantStatus: "invalid",
			wantErr:    "Nowhere",
		},
		{
			name:       "bad filename",
			file:       "Bad-Name.json",
			body:       `{"start_location": "Yard", "end_locations": ["Yard"], "locations": [{"name": "Yard"}]}`,
			wantStatus: "invalid",
			wantErr:    "snake_case",
		},
		{
			name:       "bad extension",
			file:       "world.toml",
			body:       "",
			wantStatus: "invalid",
			wantErr:    "extension",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validateFile(writeWorld(t, dir, tt.file, tt.body))
			assert.Equal(t, tt.wantStatus, r.status())
			if tt.wantErr != "" {
				require.NotEmpty(t, r.errs)
				assert.Contains(t, r.errs[0], tt.wantErr)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := writeWorld(t, dir, "good.json",
		`{"title": "Good", "start_location": "Yard", "end_locations": ["Yard"], "locations": [{"name": "Yard"}]}`)
	bad := writeWorld(t, dir, "bad.json", `{"start_location": "Nowhere", "locations": []}`)

	var out bytes.Buffer
	assert.Equal(t, 0, run([]string{good}, &out))
	assert.Contains(t, out.String(), "good.json")
	assert.Contains(t, out.String(), "Good")

	out.Reset()
	assert.Equal(t, 1, run([]string{good, bad}, &out))
	assert.Contains(t, out.String(), "invalid")
	assert.Contains(t, out.String(), "error: ")
}

func TestBundledWorldsAreClean(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "data", "worlds", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	var out bytes.Buffer
	assert.Equal(t, 0, run(paths, &out), out.String())
}
