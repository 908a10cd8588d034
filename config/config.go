// Package config resolves the run configuration from flags, environment
// and config file through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"knownwords/dictionary"
)

// Viper keys.
const (
	KeyKnownWords = "known_words"
	KeyText       = "text"
	KeyDelimiter  = "delimiter"
	KeyColumn     = "column"
	KeyEncoding   = "encoding"
	KeyTokenizer  = "tokenizer"
	KeyDict       = "dict"
	KeyMode       = "mode"
	KeyReport     = "report"
	KeyProgress   = "progress"
	KeyListNew    = "list_new"
	KeyLogLevel   = "logging.level"
	KeyLogFormat  = "logging.format"
)

// EnvPrefix prefixes every environment variable, e.g. KNOWNWORDS_COLUMN.
const EnvPrefix = "KNOWNWORDS"

var (
	// ErrMissingPath reports an unset input path.
	ErrMissingPath = errors.New("missing input path")
	// ErrInvalidValue reports an option outside its allowed set.
	ErrInvalidValue = errors.New("invalid option value")
)

// Config is the resolved configuration of one run.
type Config struct {
	KnownWords string
	Text       string
	Delimiter  string
	Column     int
	Encoding   string
	Tokenizer  string
	Dict       string
	Mode       string
	Report     string
	Progress   bool
	ListNew    bool
	LogLevel   string
	LogFormat  string
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDelimiter, `\t`)
	v.SetDefault(KeyColumn, 0)
	v.SetDefault(KeyEncoding, "utf-8")
	v.SetDefault(KeyTokenizer, "kagome")
	v.SetDefault(KeyDict, "ipa")
	v.SetDefault(KeyMode, "normal")
	v.SetDefault(KeyProgress, true)
	v.SetDefault(KeyListNew, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// BindEnv makes v consult KNOWNWORDS_* variables for every key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	delim, err := Unescape(v.GetString(KeyDelimiter))
	if err != nil {
		return Config{}, fmt.Errorf("%w: delimiter: %v", ErrInvalidValue, err)
	}
	c := Config{
		KnownWords: ExpandPath(v.GetString(KeyKnownWords)),
		Text:       ExpandPath(v.GetString(KeyText)),
		Delimiter:  delim,
		Column:     v.GetInt(KeyColumn),
		Encoding:   strings.ToLower(v.GetString(KeyEncoding)),
		Tokenizer:  strings.ToLower(v.GetString(KeyTokenizer)),
		Dict:       strings.ToLower(v.GetString(KeyDict)),
		Mode:       strings.ToLower(v.GetString(KeyMode)),
		Report:     ExpandPath(v.GetString(KeyReport)),
		Progress:   v.GetBool(KeyProgress),
		ListNew:    v.GetBool(KeyListNew),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks required paths and enumerated options.
func (c Config) Validate() error {
	if c.KnownWords == "" {
		return fmt.Errorf("%w: known-words", ErrMissingPath)
	}
	if c.Text == "" {
		return fmt.Errorf("%w: text", ErrMissingPath)
	}
	if c.Delimiter == "" {
		return fmt.Errorf("%w: delimiter must not be empty", ErrInvalidValue)
	}
	if c.Column < 0 {
		return fmt.Errorf("%w: column %d is negative", ErrInvalidValue, c.Column)
	}
	for _, o := range []struct {
		name, value string
		allowed     []string
	}{
		{"encoding", c.Encoding, []string{"utf-8", "utf8", "shift_jis", "sjis", "euc-jp"}},
		{"tokenizer", c.Tokenizer, []string{"kagome", "runs"}},
		{"dict", c.Dict, []string{"ipa", "uni"}},
		{"mode", c.Mode, []string{"normal", "search", "extended"}},
		{"log-format", c.LogFormat, []string{"console", "json"}},
	} {
		if !slices.Contains(o.allowed, o.value) {
			return fmt.Errorf("%w: %s %q (want one of %s)", ErrInvalidValue, o.name, o.value, strings.Join(o.allowed, ", "))
		}
	}
	return nil
}

// Dictionary returns the known-word loading options.
func (c Config) Dictionary() dictionary.Options {
	return dictionary.Options{Delimiter: c.Delimiter, Column: c.Column}
}

// Unescape interprets Go escapes such as \t in a delimiter given on the
// command line. A malformed escape is an error.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", err
	}
	return out, nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}
