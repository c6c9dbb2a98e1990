package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// TemplateManifest is the template.toml at the root of each template
// directory.
//
// Conditions map a path pattern to the name of a template variable; matching
// paths are emitted only when that variable is truthy. Patterns follow the
// same matching rules as template_patterns: full relative path first, then
// base name for patterns without a slash.
type TemplateManifest struct {
	Name             string            `toml:"name"`
	Description      string            `toml:"description"`
	TemplatePatterns []string          `toml:"template_patterns"`
	Renames          map[string]string `toml:"renames"`
	Conditions       map[string]string `toml:"conditions"`
}

type Template struct {
	Manifest TemplateManifest
	FS       fs.FS
	BasePath string
}

type TemplateRegistry struct {
	templates map[string]*Template
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*Template),
	}
}

func (r *TemplateRegistry) LoadFromFS(fsys fs.FS, rootDir string) error {
	entries, err := fs.ReadDir(fsys, rootDir)
	if err != nil {
		return fmt.Errorf("reading scaffold directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		templatePath := path.Join(rootDir, entry.Name())
		template, err := loadTemplate(fsys, templatePath)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", entry.Name(), err)
		}

		r.templates[template.Manifest.Name] = template
	}

	return nil
}

func (r *TemplateRegistry) Get(name string) (*Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

func (r *TemplateRegistry) List() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}

func (r *TemplateRegistry) All() []*Template {
	templates := make([]*Template, 0, len(r.templates))
	for _, t := range r.templates {
		templates = append(templates, t)
	}
	return templates
}

func loadTemplate(fsys fs.FS, basePath string) (*Template, error) {
	manifestPath := path.Join(basePath, "template.toml")

	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var manifest TemplateManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if manifest.Renames == nil {
		manifest.Renames = make(map[string]string)
	}
	if manifest.Conditions == nil {
		manifest.Conditions = make(map[string]string)
	}

	return &Template{
		Manifest: manifest,
		FS:       fsys,
		BasePath: basePath,
	}, nil
}

func matchPattern(pattern, filePath string) bool {
	pattern = filepath.ToSlash(pattern)
	filePath = filepath.ToSlash(filePath)

	if matched, err := path.Match(pattern, filePath); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "/") {
		baseName := path.Base(filePath)
		if matched, err := path.Match(pattern, baseName); err == nil && matched {
			return true
		}
	}

	return false
}

func (t *Template) ShouldProcessAsTemplate(filePath string) bool {
	for _, pattern := range t.Manifest.TemplatePatterns {
		if matchPattern(pattern, filePath) {
			return true
		}
	}
	return false
}

// Condition returns the variable gating filePath, if any.
func (t *Template) Condition(filePath string) (string, bool) {
	for pattern, variable := range t.Manifest.Conditions {
		if matchPattern(pattern, filePath) {
			return variable, true
		}
	}
	return "", false
}

func (t *Template) DestinationName(sourceName string) string {
	if dest, ok := t.Manifest.Renames[sourceName]; ok {
		return dest
	}
	return sourceName
}
