// internal/batch/output.go
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	json "github.com/json-iterator/go"
)

// WriteResults encodes results as an indented JSON array. When path ends in
// .br the output is brotli-compressed.
func WriteResults(w io.Writer, path string, results []Result) error {
	var out io.Writer = w
	var bw *brotli.Writer
	if strings.HasSuffix(path, ".br") {
		bw = brotli.NewWriterLevel(w, brotli.DefaultCompression)
		out = bw
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if bw != nil {
		if err := bw.Close(); err != nil {
			return fmt.Errorf("failed to flush compressed results: %w", err)
		}
	}
	return nil
}

// WriteResultsFile writes results to path, creating or truncating it.
func WriteResultsFile(path string, results []Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	buf := bufio.NewWriter(f)
	if err := WriteResults(buf, path, results); err != nil {
		return err
	}
	return buf.Flush()
}

// LineSink returns a Sink that writes each result as one JSON line.
func LineSink(w io.Writer) Sink {
	enc := json.NewEncoder(w)
	return func(r Result) error {
		return enc.Encode(r)
	}
}
