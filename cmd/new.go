package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/slsforge/slsforge/cmd/ui/plugin_ui"
	"github.com/slsforge/slsforge/pkg/configure"
	"github.com/slsforge/slsforge/pkg/plugins"
)

// New runs the interactive flow: interview, plugin menu, summary, confirm,
// generate, persist. Without a terminal every stage degrades to line-oriented
// prompts over one shared input scanner.
func New(ctx context.Context, cmd *cli.Command) error {
	baseDir := "."
	if cmd.NArg() > 0 {
		baseDir = cmd.Args().First()
	}
	force := cmd.Bool("force")

	configPath := configFilePath(baseDir)
	seed, err := configure.Load(configPath)
	if err != nil {
		var perr *configure.ParseError
		if !errors.As(err, &perr) {
			return err
		}
		// The cache is a convenience; a corrupt one must not block the run.
		log.Warnf("ignoring corrupt %s: %v", configure.ConfigFileName, perr)
		seed = nil
	}

	interactive := plugin_ui.TerminalAvailable()
	var configurator *configure.Configurator
	if interactive {
		configurator = configure.NewFormConfigurator(baseDir)
	} else {
		configurator = configure.NewConfigurator(os.Stdin, os.Stdout, baseDir)
	}

	cfg, err := configurator.ConfigureOptions(ctx, seed)
	if err != nil {
		return interviewError(ctx, err)
	}

	selected, err := selectPlugins(ctx, interactive, configurator)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, cfg, selected)

	proceed, err := confirmGenerate(ctx, interactive, configurator)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Println("Aborted. No files were written.")
		return nil
	}

	result, summary, err := generate(os.Stdout, cfg, selected, baseDir, force)
	if err != nil {
		return err
	}

	if err := configure.Save(cfg, configPath); err != nil {
		return fmt.Errorf("saving %s: %w", configure.ConfigFileName, err)
	}

	printNextSteps(os.Stdout, cfg, baseDir, len(result.FilesCreated), summary)

	return nil
}

// interviewError maps a form abort or a cancelled context to the interrupt
// sentinel so main can exit 130.
func interviewError(ctx context.Context, err error) error {
	if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
		return ErrInterrupted
	}
	return err
}

// selectPlugins opens the interactive menu, or the numbered picker when no
// terminal is available. The picker reads through the interview's scanner;
// a second scanner over the same pipe would find it already drained.
func selectPlugins(ctx context.Context, interactive bool, configurator *configure.Configurator) ([]string, error) {
	catalog := plugins.DefaultCatalog()

	if !interactive {
		log.Warn("interactive menu unavailable; using numbered selection")
		return plugins.PickFallback(configurator.Input(), os.Stdout, catalog)
	}

	result, err := plugin_ui.Run(ctx, catalog)
	if errors.Is(err, plugins.ErrNoTerminal) {
		log.Warn("interactive menu unavailable; using numbered selection")
		return plugins.PickFallback(configurator.Input(), os.Stdout, catalog)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrInterrupted
		}
		return nil, fmt.Errorf("plugin menu: %w", err)
	}

	if result.Interrupted {
		return nil, ErrInterrupted
	}
	if result.Cancelled {
		fmt.Println("Plugin selection cancelled; continuing without plugins.")
		return nil, nil
	}

	return result.Selected, nil
}

func confirmGenerate(ctx context.Context, interactive bool, configurator *configure.Configurator) (bool, error) {
	if !interactive {
		proceed, err := configurator.AskYesNo(ctx, "Generate project?", true)
		if err != nil {
			return false, interviewError(ctx, err)
		}
		return proceed, nil
	}

	proceed := true
	confirm := huh.NewConfirm().
		Title("Generate project?").
		Affirmative("Generate").
		Negative("Abort").
		Value(&proceed)

	if err := huh.NewForm(huh.NewGroup(confirm)).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		if ctx.Err() != nil {
			return false, ErrInterrupted
		}
		return false, err
	}

	return proceed, nil
}
