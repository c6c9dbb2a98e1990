package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/sync/errgroup"

	"github.com/slsforge/slsforge/pkg/events"
)

// Scaffolder renders registered templates into a target directory.
type Scaffolder struct {
	registry *TemplateRegistry
	options  *options
}

func NewScaffolder(registry *TemplateRegistry, opts ...Option) *Scaffolder {
	return &Scaffolder{
		registry: registry,
		options:  defaultOptions().apply(opts...),
	}
}

type Result struct {
	FilesCreated []string
	DirsCreated  []string
	Skipped      []string
}

type fileJob struct {
	srcPath string
	relPath string
	dest    string
	destRel string
}

// Scaffold emits the named template into target. Files gated by a falsy
// condition variable are skipped; existing files are an error unless force
// is set.
func (s *Scaffolder) Scaffold(name, target string, variables *Variables, force bool) (*Result, error) {
	tmpl, ok := s.registry.Get(name)
	if !ok {
		available := s.registry.List()
		sort.Strings(available)
		return nil, fmt.Errorf("unknown template %q; available templates: %s",
			name, strings.Join(available, ", "))
	}

	if err := s.validateTargetDir(target, force); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory: %w", err)
	}

	result := &Result{
		FilesCreated: make([]string, 0),
		DirsCreated:  make([]string, 0),
		Skipped:      make([]string, 0),
	}

	vars := variables.ToMap()

	var jobs []fileJob
	err := fs.WalkDir(tmpl.FS, tmpl.BasePath, func(srcPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(tmpl.BasePath, srcPath)
		if err != nil {
			return err
		}

		if relPath == "." || relPath == "template.toml" {
			return nil
		}

		if variable, gated := tmpl.Condition(relPath); gated && !truthy(vars[variable]) {
			result.Skipped = append(result.Skipped, relPath)
			s.options.events.Handle(events.Skipped(relPath, variable+" disabled"))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		destRel := tmpl.destRelPath(relPath)
		dest := filepath.Join(target, destRel)

		if d.IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", destRel, err)
			}
			result.DirsCreated = append(result.DirsCreated, destRel)
			return nil
		}

		jobs = append(jobs, fileJob{
			srcPath: srcPath,
			relPath: relPath,
			dest:    dest,
			destRel: destRel,
		})
		return nil
	})
	if err != nil {
		return result, err
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.options.workers)

	for _, job := range jobs {
		g.Go(func() error {
			if err := s.emitFile(tmpl, job, vars, force); err != nil {
				return err
			}
			mu.Lock()
			result.FilesCreated = append(result.FilesCreated, job.destRel)
			mu.Unlock()
			s.options.events.Handle(events.Created(job.destRel))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	sort.Strings(result.FilesCreated)
	sort.Strings(result.DirsCreated)
	sort.Strings(result.Skipped)

	return result, nil
}

func (s *Scaffolder) emitFile(tmpl *Template, job fileJob, vars map[string]any, force bool) error {
	content, err := fs.ReadFile(tmpl.FS, job.srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", job.relPath, err)
	}

	if tmpl.ShouldProcessAsTemplate(job.relPath) {
		content, err = renderTemplate(content, vars, job.relPath)
		if err != nil {
			return fmt.Errorf("processing template %s: %w", job.relPath, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(job.dest), 0755); err != nil {
		return fmt.Errorf("creating parent directory for %s: %w", job.destRel, err)
	}

	if _, err := os.Stat(job.dest); err == nil {
		if !force {
			return fmt.Errorf("file %s already exists (use --force to overwrite)", job.destRel)
		}
		s.options.events.Handle(events.Warning(job.destRel, "overwriting existing file", nil))
	}

	if err := os.WriteFile(job.dest, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", job.destRel, err)
	}

	return nil
}

// destRelPath maps a source-relative path to its destination: renames apply
// to every path component, and a trailing .scaffold suffix is stripped.
func (t *Template) destRelPath(relPath string) string {
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	for i, part := range parts {
		parts[i] = t.DestinationName(part)
	}
	parts[len(parts)-1] = strings.TrimSuffix(parts[len(parts)-1], ".scaffold")
	return filepath.Join(parts...)
}

func (s *Scaffolder) validateTargetDir(target string, force bool) error {
	if force {
		return nil
	}

	markerPath := filepath.Join(target, "serverless.yml")
	if _, err := os.Stat(markerPath); err == nil {
		return fmt.Errorf("directory already contains serverless.yml (use --force to overwrite)")
	}

	return nil
}

func renderTemplate(content []byte, vars map[string]any, name string) ([]byte, error) {
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("executing: %w", err)
	}

	return buf.Bytes(), nil
}

func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return v != "" && !strings.EqualFold(v, "false")
	case nil:
		return false
	default:
		return true
	}
}

type TemplateInfo struct {
	Name        string
	Description string
}

func (s *Scaffolder) ListTemplates() []TemplateInfo {
	templates := s.registry.All()
	infos := make([]TemplateInfo, 0, len(templates))

	for _, t := range templates {
		infos = append(infos, TemplateInfo{
			Name:        t.Manifest.Name,
			Description: t.Manifest.Description,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	return infos
}

// NewScaffolderWithEmbedded loads every template under rootDir in fsys.
func NewScaffolderWithEmbedded(fsys fs.FS, rootDir string, opts ...Option) (*Scaffolder, error) {
	registry := NewTemplateRegistry()

	if err := registry.LoadFromFS(fsys, rootDir); err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}

	return NewScaffolder(registry, opts...), nil
}
