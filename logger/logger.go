package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrFormat reports an unsupported log format.
var ErrFormat = errors.New("unknown log format")

// New returns a logger writing to w at level, as "console" (human readable)
// or "json" lines.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	switch format {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// InitLogs creates dir if needed and removes the .json files left by
// previous runs.
func InitLogs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			_ = os.Remove(filepath.Join(dir, f.Name()))
		}
	}
	return nil
}

// LogJSON writes data as indented JSON to dir/id.json. The file is written
// under a temporary name and renamed, so readers never see a partial file.
func LogJSON(dir, id string, data any) error {
	file := filepath.Join(dir, id+".json")
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	tmp := file + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, file)
}
