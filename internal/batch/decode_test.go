// internal/batch/decode_test.go
package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `[
			{"id": "a", "op": "add", "vector": [1, 2], "other": {"x": 3, "y": 4}},
			{"op": "rotate", "vector": [1, 0], "angle": 90}
		]`},
		{"jsonl", FormatJSONL, `
# comment lines and blank lines are skipped
{"id": "a", "op": "add", "vector": [1, 2], "other": {"x": 3, "y": 4}}

{"op": "rotate", "vector": [1, 0], "angle": 90}
`},
		{"yaml", FormatYAML, `
- id: a
  op: add
  vector: [1, 2]
  other: {x: 3, y: 4}
- op: rotate
  vector: [1, 0]
  angle: 90
`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := Decode(strings.NewReader(tc.input), tc.format)
			require.NoError(t, err)
			require.Len(t, jobs, 2)

			assert.Equal(t, "a", jobs[0].ID)
			assert.Equal(t, "add", jobs[0].Op)
			assert.NotNil(t, jobs[0].Vector)
			assert.NotNil(t, jobs[0].Other)

			_, err = uuid.Parse(jobs[1].ID)
			assert.NoError(t, err, "missing IDs are filled with a UUID")
			assert.Equal(t, "rotate", jobs[1].Op)
			assert.EqualValues(t, 90, jobs[1].Angle)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"op": "add"}`), FormatJSON)
	assert.ErrorContains(t, err, "failed to decode JSON jobs")

	_, err = Decode(strings.NewReader("{\"op\": \"neg\", \"vector\": [1, 2]}\n{oops\n"), FormatJSONL)
	assert.ErrorContains(t, err, "line 2")

	_, err = Decode(strings.NewReader("op: [unclosed"), FormatYAML)
	assert.ErrorContains(t, err, "failed to decode YAML jobs")

	_, err = Decode(strings.NewReader(""), Format("toml"))
	assert.ErrorContains(t, err, "unsupported job format")
}

func TestDecode_EmptyYAML(t *testing.T) {
	jobs, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFormatFromPath(t *testing.T) {
	testCases := map[string]Format{
		"jobs.json":     FormatJSON,
		"jobs.jsonl":    FormatJSONL,
		"jobs.ndjson":   FormatJSONL,
		"jobs.yaml":     FormatYAML,
		"dir/jobs.yml":  FormatYAML,
		"jobs.jsonl.br": FormatJSONL,
		"archive.JSON":  FormatJSON,
	}
	for path, want := range testCases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("jobs")
	assert.Error(t, err)
	_, err = FormatFromPath("jobs.csv")
	assert.Error(t, err)
}

func TestOpen_Brotli(t *testing.T) {
	dir := t.TempDir()
	var compressed bytes.Buffer
	w := brotli.NewWriter(&compressed)
	_, err := w.Write([]byte(`{"op": "length", "vector": [3, 4]}` + "\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(dir, "jobs.jsonl.br")
	require.NoError(t, os.WriteFile(path, compressed.Bytes(), 0o644))

	rc, err := Open(path)
	require.NoError(t, err)
	defer rc.Close()

	jobs, err := Decode(rc, FormatJSONL)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "length", jobs[0].Op)

	_, err = Open(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to open job file")
}
