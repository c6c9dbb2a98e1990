package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][-A-Za-z0-9]{0,38}[A-Za-z0-9]$`)

// ValidationError reports rejected interactive input. It is always handled by
// re-prompting and never escapes the prompt loop.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidateProjectName checks the name shape and that no directory with that
// name already exists under dir.
func ValidateProjectName(name, dir string) error {
	if !namePattern.MatchString(name) {
		return &ValidationError{
			Field:  "project name",
			Reason: "must start with a letter, contain only letters, digits and dashes, end with a letter or digit, and be 2-40 characters long",
		}
	}

	if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
		return &ValidationError{
			Field:  "project name",
			Reason: fmt.Sprintf("directory %q already exists", name),
		}
	}

	return nil
}
