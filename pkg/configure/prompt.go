package configure

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// Configurator interviews the user and produces a Configuration. On a real
// terminal the prompts are huh form fields; otherwise they are line-oriented
// reads over a single shared scanner, which later stages (the plugin
// fallback picker) must reuse so no buffered input is lost.
type Configurator struct {
	in      *bufio.Scanner
	out     io.Writer
	baseDir string
	forms   bool
}

// NewConfigurator returns a line-oriented Configurator reading from in and
// prompting on out. baseDir is where the project directory will be created;
// name validation checks collisions against it.
func NewConfigurator(in io.Reader, out io.Writer, baseDir string) *Configurator {
	return &Configurator{
		in:      bufio.NewScanner(in),
		out:     out,
		baseDir: baseDir,
	}
}

// NewFormConfigurator returns a Configurator that drives its prompts through
// huh forms on the terminal. The stdin scanner is still initialised so
// callers can hand Input to line-oriented stages.
func NewFormConfigurator(baseDir string) *Configurator {
	c := NewConfigurator(os.Stdin, os.Stdout, baseDir)
	c.forms = true
	return c
}

// Input exposes the interview's scanner. Anything else reading the same
// stream must go through it; a fresh scanner over an already-buffered pipe
// sees only EOF.
func (c *Configurator) Input() *bufio.Scanner {
	return c.in
}

func (c *Configurator) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ReadProjectName prompts until the entered name passes validation. Rejected
// entries print the reason and re-prompt; only input stream errors or
// cancellation abort.
func (c *Configurator) ReadProjectName(ctx context.Context) (string, error) {
	if c.forms {
		var name string
		input := huh.NewInput().
			Title("Project name").
			Validate(func(s string) error {
				return ValidateProjectName(strings.TrimSpace(s), c.baseDir)
			}).
			Value(&name)

		if err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx); err != nil {
			return "", err
		}
		return strings.TrimSpace(name), nil
	}

	for {
		fmt.Fprint(c.out, "Project name: ")
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}

		if err := ValidateProjectName(line, c.baseDir); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(c.out, "  %s\n", verr.Reason)
				continue
			}
			return "", err
		}

		return line, nil
	}
}

// parseYesNo maps an explicit answer to a bool. Blank is not an explicit
// answer and reports !ok, as does anything unrecognised.
func parseYesNo(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func validateYesNo(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := parseYesNo(s); !ok {
		return errors.New("please answer y or n")
	}
	return nil
}

// AskYesNo asks prompt with the default shown in brackets. Blank input takes
// the default silently; y/yes/n/no (any case) answer explicitly; anything
// else re-prompts. Blank and invalid input are distinct branches on purpose.
func (c *Configurator) AskYesNo(ctx context.Context, prompt string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	if c.forms {
		var answer string
		input := huh.NewInput().
			Title(fmt.Sprintf("%s %s", prompt, hint)).
			Validate(validateYesNo).
			Value(&answer)

		if err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx); err != nil {
			return false, err
		}
		if v, ok := parseYesNo(answer); ok {
			return v, nil
		}
		return def, nil
	}

	for {
		fmt.Fprintf(c.out, "%s %s ", prompt, hint)
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}

		if line == "" {
			return def, nil
		}

		if v, ok := parseYesNo(line); ok {
			return v, nil
		}
		fmt.Fprintln(c.out, "  please answer y or n")
	}
}

type question struct {
	key    string
	prompt string
}

var baselineQuestions = []question{
	{KeyVirtualenv, "Create a Python virtualenv?"},
	{KeyDocker, "Add Docker assets?"},
	{KeyGit, "Initialise a git repository?"},
	{KeyPrecommit, "Add pre-commit hooks?"},
}

var advancedQuestions = []question{
	{KeyTypescript, "Use TypeScript handlers?"},
	{KeyTerraform, "Add Terraform configuration?"},
	{KeyCICD, "Add a CI/CD workflow?"},
}

// ConfigureOptions runs the full interview: project name, the four baseline
// toggles in fixed order, then the advanced toggles only if the user opts in.
// A previously saved configuration may be passed as seed; its values become
// the prompt defaults for the toggles (never the name, whose directory now
// exists).
func (c *Configurator) ConfigureOptions(ctx context.Context, seed *Configuration) (*Configuration, error) {
	cfg := New()

	name, err := c.ReadProjectName(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.SetProjectName(name); err != nil {
		return nil, err
	}

	ask := func(q question) error {
		def := Defaults[q.key]
		if seed != nil {
			if v, ok := seed.Flag(q.key); ok {
				def = v
			}
		}
		v, err := c.AskYesNo(ctx, q.prompt, def)
		if err != nil {
			return err
		}
		return cfg.SetFlag(q.key, v)
	}

	for _, q := range baselineQuestions {
		if err := ask(q); err != nil {
			return nil, err
		}
	}

	advanced, err := c.AskYesNo(ctx, "Configure advanced options?", false)
	if err != nil {
		return nil, err
	}
	if advanced {
		for _, q := range advancedQuestions {
			if err := ask(q); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}
