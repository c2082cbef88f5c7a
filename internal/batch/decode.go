// internal/batch/decode.go
package batch

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a job file.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatJSONL, FormatYAML:
		return f, nil
	case "ndjson":
		return FormatJSONL, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported job format %q", s)
}

// FormatFromPath infers the format from a file extension, looking past a
// trailing .br.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(strings.TrimSuffix(path, ".br")), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer job format of %q", path)
	}
	return ParseFormat(ext)
}

// Open opens a job file, transparently decompressing it when its name ends
// in .br.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	if !strings.HasSuffix(path, ".br") {
		return f, nil
	}
	return struct {
		io.Reader
		io.Closer
	}{brotli.NewReader(f), f}, nil
}

// Decode reads every job from r. Jobs without an ID are given a random one.
func Decode(r io.Reader, format Format) ([]Job, error) {
	var jobs []Job
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&jobs); err != nil {
			return nil, fmt.Errorf("failed to decode JSON jobs: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&jobs); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to decode YAML jobs: %w", err)
		}
	case FormatJSONL:
		scanner := bufio.NewScanner(r)
		for n := 1; scanner.Scan(); n++ {
			job, ok, err := DecodeLine(scanner.Bytes())
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			if ok {
				jobs = append(jobs, job)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read JSONL jobs: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported job format %q", format)
	}

	for i := range jobs {
		assignID(&jobs[i])
	}
	return jobs, nil
}

// DecodeLine decodes a single JSONL record. Blank lines and lines starting
// with # are skipped and reported with ok == false.
func DecodeLine(line []byte) (job Job, ok bool, err error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return Job{}, false, nil
	}
	if err := json.Unmarshal(line, &job); err != nil {
		return Job{}, false, fmt.Errorf("failed to decode job: %w", err)
	}
	assignID(&job)
	return job, true, nil
}

func assignID(job *Job) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
}
