package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/slsforge/slsforge/cmd/embed"
	"github.com/slsforge/slsforge/pkg/configure"
	"github.com/slsforge/slsforge/pkg/events"
	"github.com/slsforge/slsforge/pkg/scaffold"
	"github.com/slsforge/slsforge/pkg/version"
)

func configFilePath(baseDir string) string {
	return filepath.Join(baseDir, configure.ConfigFileName)
}

func templateFor(cfg *configure.Configuration) string {
	if cfg.Bool(configure.KeyTypescript) {
		return "typescript"
	}
	return "python"
}

func newVariables(cfg *configure.Configuration, selected []string) *scaffold.Variables {
	return scaffold.NewVariables(scaffold.VariablesConfig{
		ProjectName: cfg.ProjectName(),
		Version:     version.String(),
		Plugins:     selected,
		Virtualenv:  cfg.Bool(configure.KeyVirtualenv),
		Docker:      cfg.Bool(configure.KeyDocker),
		Git:         cfg.Bool(configure.KeyGit),
		Precommit:   cfg.Bool(configure.KeyPrecommit),
		TypeScript:  cfg.Bool(configure.KeyTypescript),
		Terraform:   cfg.Bool(configure.KeyTerraform),
		CICD:        cfg.Bool(configure.KeyCICD),
	})
}

// generate runs the scaffolder against the embedded templates. Events stream
// through a collector into the line printer on w, so callers get both live
// output and the per-level counts for the epilogue.
func generate(w io.Writer, cfg *configure.Configuration, selected []string, baseDir string, force bool) (*scaffold.Result, events.Summary, error) {
	collector := events.NewCollector(newEventPrinter(w))

	scaffolder, err := scaffold.NewScaffolderWithEmbedded(embed.Scaffold, "scaffold",
		scaffold.WithEvents(collector),
		scaffold.WithWorkers(runtime.GOMAXPROCS(0)))
	if err != nil {
		return nil, events.Summary{}, fmt.Errorf("initialising scaffolder: %w", err)
	}

	target := filepath.Join(baseDir, cfg.ProjectName())

	result, err := scaffolder.Scaffold(templateFor(cfg), target, newVariables(cfg, selected), force)
	if err != nil {
		return nil, collector.Summary(), err
	}

	return result, collector.Summary(), nil
}

// printTemplateList writes one line per embedded template.
func printTemplateList(w io.Writer) error {
	scaffolder, err := scaffold.NewScaffolderWithEmbedded(embed.Scaffold, "scaffold")
	if err != nil {
		return fmt.Errorf("initialising scaffolder: %w", err)
	}

	for _, info := range scaffolder.ListTemplates() {
		fmt.Fprintf(w, "%-12s %s\n", info.Name, info.Description)
	}

	return nil
}

func printSummary(w io.Writer, cfg *configure.Configuration, selected []string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Project: %s (%s template)\n", cfg.ProjectName(), templateFor(cfg))

	for _, key := range configure.BaselineKeys {
		fmt.Fprintf(w, "  %-16s %s\n", key, yesNo(cfg.Bool(key)))
	}
	for _, key := range configure.AdvancedKeys {
		if cfg.IsSet(key) {
			fmt.Fprintf(w, "  %-16s %s\n", key, yesNo(cfg.Bool(key)))
		}
	}

	if len(selected) == 0 {
		fmt.Fprintln(w, "  plugins          (none)")
	} else {
		fmt.Fprintf(w, "  plugins          %s\n", strings.Join(selected, ", "))
	}
	fmt.Fprintln(w)
}

func printNextSteps(w io.Writer, cfg *configure.Configuration, baseDir string, fileCount int, summary events.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Done! Created %d files (%s).\n", fileCount, summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  cd %s\n", filepath.Join(baseDir, cfg.ProjectName()))
	if cfg.Bool(configure.KeyGit) {
		fmt.Fprintln(w, "  git init && git add -A && git commit -m 'initial scaffold'")
	}
	if cfg.Bool(configure.KeyVirtualenv) && !cfg.Bool(configure.KeyTypescript) {
		fmt.Fprintln(w, "  python -m venv .venv && . .venv/bin/activate")
		fmt.Fprintln(w, "  pip install -r requirements-dev.txt")
	}
	fmt.Fprintln(w, "  npm install")
	if cfg.Bool(configure.KeyPrecommit) {
		fmt.Fprintln(w, "  pre-commit install")
	}
	if cfg.Bool(configure.KeyTerraform) {
		fmt.Fprintln(w, "  terraform -chdir=terraform init")
	}
	fmt.Fprintln(w, "  npx serverless offline")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
