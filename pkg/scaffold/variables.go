package scaffold

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	dashRuns     = regexp.MustCompile(`-+`)
)

// Variables is everything a template body or condition can reference.
type Variables struct {
	ProjectName string
	ProjectSlug string
	Version     string
	Year        string
	Plugins     []string

	Virtualenv bool
	Docker     bool
	Git        bool
	Precommit  bool
	TypeScript bool
	Terraform  bool
	CICD       bool
}

type VariablesConfig struct {
	ProjectName string
	Version     string
	Plugins     []string

	Virtualenv bool
	Docker     bool
	Git        bool
	Precommit  bool
	TypeScript bool
	Terraform  bool
	CICD       bool
}

func NewVariables(cfg VariablesConfig) *Variables {
	return &Variables{
		ProjectName: cfg.ProjectName,
		ProjectSlug: toSlug(cfg.ProjectName),
		Version:     cfg.Version,
		Year:        time.Now().Format("2006"),
		Plugins:     slices.Clone(cfg.Plugins),
		Virtualenv:  cfg.Virtualenv,
		Docker:      cfg.Docker,
		Git:         cfg.Git,
		Precommit:   cfg.Precommit,
		TypeScript:  cfg.TypeScript,
		Terraform:   cfg.Terraform,
		CICD:        cfg.CICD,
	}
}

// ToMap flattens the variables for text/template rendering and condition
// lookup.
func (v *Variables) ToMap() map[string]any {
	return map[string]any{
		"ProjectName": v.ProjectName,
		"ProjectSlug": v.ProjectSlug,
		"Version":     v.Version,
		"Year":        v.Year,
		"Plugins":     slices.Clone(v.Plugins),
		"Virtualenv":  v.Virtualenv,
		"Docker":      v.Docker,
		"Git":         v.Git,
		"Precommit":   v.Precommit,
		"TypeScript":  v.TypeScript,
		"Terraform":   v.Terraform,
		"CICD":        v.CICD,
	}
}

func toSlug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
