package configure

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/slsforge/slsforge/pkg/fileutils"
)

// ConfigFileName is where the previous run's configuration is cached,
// relative to the invocation directory.
const ConfigFileName = ".slsforge-config"

// ParseError reports a corrupt persisted configuration file.
type ParseError struct {
	Path   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// Save writes every set key to path as key=value lines with a leading
// timestamp comment, replacing any existing file. The write is atomic so a
// failure never truncates the previous record.
func Save(cfg *Configuration, path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# generated by slsforge at %s\n", time.Now().Format(time.RFC3339))
	if cfg.ProjectName() != "" {
		fmt.Fprintf(&b, "%s=%s\n", KeyProjectName, cfg.ProjectName())
	}
	for _, key := range allKeys() {
		if v, ok := cfg.Flag(key); ok {
			fmt.Fprintf(&b, "%s=%t\n", key, v)
		}
	}

	return fileutils.AtomicWrite(path, func(w io.Writer) error {
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Load reads a previously saved configuration. A missing file returns
// (nil, nil); malformed content returns a *ParseError.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := New()
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{Path: path, Line: i + 1, Reason: fmt.Sprintf("not a key=value line: %q", line)}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if key == KeyProjectName {
			if value == "" {
				return nil, &ParseError{Path: path, Line: i + 1, Reason: "empty project name"}
			}
			if err := cfg.SetProjectName(value); err != nil {
				return nil, &ParseError{Path: path, Line: i + 1, Reason: "duplicate project_name"}
			}
			continue
		}

		if !knownFlag(key) {
			return nil, &ParseError{Path: path, Line: i + 1, Reason: fmt.Sprintf("unknown key %q", key)}
		}

		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, &ParseError{Path: path, Line: i + 1, Reason: fmt.Sprintf("invalid value %q for %s", value, key)}
		}
		if err := cfg.SetFlag(key, b); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func allKeys() []string {
	keys := make([]string, 0, len(BaselineKeys)+len(AdvancedKeys))
	keys = append(keys, BaselineKeys...)
	keys = append(keys, AdvancedKeys...)
	return keys
}
