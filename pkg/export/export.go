// Package export writes snapshots and analysis reports as JSON or YAML,
// optionally zstd-compressed.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Format names an encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("unknown export format")

// Options configures [Write].
type Options struct {
	Format   Format
	Compress bool
}

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers options from a file name such as graph.json or
// graph.yaml.zst.
func FormatFromPath(path string) (Options, error) {
	var opts Options
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".zst" {
		opts.Compress = true
		path = strings.TrimSuffix(path, filepath.Ext(path))
		ext = strings.ToLower(filepath.Ext(path))
	}
	f, err := ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil || ext == "" {
		return Options{}, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(path))
	}
	opts.Format = f
	return opts, nil
}

// Write encodes v to w.
func Write(w io.Writer, v any, opts Options) error {
	if !opts.Compress {
		return encode(w, v, opts.Format)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if err := encode(enc, v, opts.Format); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zstd close: %w", err)
	}
	return nil
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile writes v to path, choosing the format from the file name.
func WriteFile(path string, v any) error {
	opts, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, v, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Read decodes data written by [Write] into v.
func Read(r io.Reader, v any, opts Options) error {
	if opts.Compress {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	switch opts.Format {
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("decode yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}
