package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/slsforge/slsforge/pkg/configure"
	"github.com/slsforge/slsforge/pkg/plugins"
)

func xNewCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Scaffold a new project without prompting",
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Project name"},
			&cli.BoolFlag{Name: "virtualenv", Value: true, Usage: "Create a Python virtualenv"},
			&cli.BoolFlag{Name: "docker", Usage: "Add Docker assets"},
			&cli.BoolFlag{Name: "git", Value: true, Usage: "Initialise a git repository"},
			&cli.BoolFlag{Name: "precommit", Value: true, Usage: "Add pre-commit hooks"},
			&cli.BoolFlag{Name: "typescript", Usage: "Use TypeScript handlers"},
			&cli.BoolFlag{Name: "terraform", Usage: "Add Terraform configuration"},
			&cli.BoolFlag{Name: "cicd", Usage: "Add a CI/CD workflow"},
			&cli.StringSliceFlag{Name: "plugin", Aliases: []string{"p"}, Usage: "Plugin to enable (repeatable)"},
			&cli.StringFlag{Name: "answers-file", Aliases: []string{"a"}, Usage: "Answers file (.toml, .yaml, .yml or .json)"},
			&cli.BoolFlag{Name: "list-plugins", Aliases: []string{"l"}, Usage: "List the plugin catalog and exit"},
			&cli.BoolFlag{Name: "list-templates", Usage: "List the embedded templates and exit"},
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Overwrite existing files"},
		},
		Action: runXNew,
	}
}

// flagKeys maps flag names to the persisted option keys they set.
var flagKeys = map[string]string{
	"virtualenv": configure.KeyVirtualenv,
	"docker":     configure.KeyDocker,
	"git":        configure.KeyGit,
	"precommit":  configure.KeyPrecommit,
	"typescript": configure.KeyTypescript,
	"terraform":  configure.KeyTerraform,
	"cicd":       configure.KeyCICD,
}

func runXNew(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("list-plugins") {
		for _, name := range plugins.DefaultCatalog() {
			fmt.Println(name)
		}
		return nil
	}
	if cmd.Bool("list-templates") {
		return printTemplateList(os.Stdout)
	}

	baseDir := "."
	if cmd.NArg() > 0 {
		baseDir = cmd.Args().First()
	}

	answers := map[string]any{}
	if path := strings.TrimSpace(cmd.String("answers-file")); path != "" {
		var err error
		answers, err = readAnswersFile(path)
		if err != nil {
			return err
		}
	}

	cfg, err := resolveConfiguration(cmd, answers, baseDir)
	if err != nil {
		return err
	}

	selected, err := resolvePlugins(cmd.StringSlice("plugin"), answers)
	if err != nil {
		return err
	}

	result, summary, err := generate(os.Stdout, cfg, selected, baseDir, cmd.Bool("force"))
	if err != nil {
		return err
	}

	fmt.Printf("Created %d files in %s (%s)\n", len(result.FilesCreated), filepath.Join(baseDir, cfg.ProjectName()), summary)

	return nil
}

// resolveConfiguration builds a Configuration from the answers file and the
// command line. Flags given explicitly win over answers-file entries, which
// win over flag defaults.
func resolveConfiguration(cmd *cli.Command, answers map[string]any, baseDir string) (*configure.Configuration, error) {
	cfg := configure.New()

	name := strings.TrimSpace(cmd.String("name"))
	if name == "" {
		if raw, ok := answers[configure.KeyProjectName]; ok {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("answers file: %s must be a string", configure.KeyProjectName)
			}
			name = strings.TrimSpace(s)
		}
	}
	if name == "" {
		return nil, fmt.Errorf("a project name is required; pass --name or set %s in the answers file", configure.KeyProjectName)
	}
	if err := configure.ValidateProjectName(name, baseDir); err != nil {
		return nil, err
	}
	if err := cfg.SetProjectName(name); err != nil {
		return nil, err
	}

	for flag, key := range flagKeys {
		value := cmd.Bool(flag)
		set := cmd.IsSet(flag)

		if raw, ok := answers[key]; ok && !set {
			parsed, err := coerceBool(raw)
			if err != nil {
				return nil, fmt.Errorf("answers file: %s: %w", key, err)
			}
			value = parsed
			set = true
		}

		// Advanced options stay absent unless explicitly given, matching
		// the interactive interview.
		if !set && slices.Contains(configure.AdvancedKeys, key) {
			continue
		}

		if err := cfg.SetFlag(key, value); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// resolvePlugins merges the repeated --plugin flags with the answers-file
// list, validates every name against the catalog, and returns the union in
// catalog order.
func resolvePlugins(fromFlags []string, answers map[string]any) ([]string, error) {
	wanted := map[string]bool{}

	if raw, ok := answers["plugins"]; ok {
		names, err := stringList(raw)
		if err != nil {
			return nil, fmt.Errorf("answers file: plugins: %w", err)
		}
		for _, name := range names {
			wanted[name] = true
		}
	}
	for _, name := range fromFlags {
		wanted[strings.TrimSpace(name)] = true
	}
	delete(wanted, "")

	for name := range wanted {
		if !plugins.Known(name) {
			return nil, fmt.Errorf("unknown plugin %q", name)
		}
	}

	var selected []string
	for _, name := range plugins.DefaultCatalog() {
		if wanted[name] {
			selected = append(selected, name)
		}
	}

	return selected, nil
}

// readAnswersFile loads a flat key-to-value answers map. The format follows
// the file extension.
func readAnswersFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	answers := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &answers); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &answers); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &answers); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported answers file extension %q (want .toml, .yaml, .yml or .json)", ext)
	}

	return answers, nil
}

func coerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("not a boolean: %q", v)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("not a boolean: %v", raw)
	}
}

func stringList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("not a string: %v", item)
			}
			names = append(names, s)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("not a list: %v", raw)
	}
}
