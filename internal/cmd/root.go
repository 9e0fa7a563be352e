// Package cmd implements the Moniker CLI commands using Cobra.
// The root command generates names; subcommands list styles and manage
// configuration.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmgilman/moniker/internal/config"
	"github.com/jmgilman/moniker/internal/namegen"
	"github.com/jmgilman/moniker/internal/prompt"
	"github.com/jmgilman/moniker/internal/slogger"
)

var rootCmd = &cobra.Command{
	Use:   "moniker [amount]",
	Short: "Generate human-readable random names",
	Long: `Moniker generates friendly random names like "rusty-nail" by combining
a random adjective with a random noun, optionally followed by a random
4-digit number.

Names are formatted according to a naming style (kebab, snake, camel,
train, title, pascal, and friends); run 'moniker styles' to see them all.
Defaults and custom word lists live in ~/.config/moniker/config.yaml.`,
	Example: `  # Generate one name with the default style
  moniker

  # Generate five names with a number suffix
  moniker -n 5

  # Generate a PascalCase name
  moniker -s PascalCase`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger := slogger.New(slogger.Config{Verbosity: verbosity})
		cmd.SetContext(slogger.WithLogger(cmd.Context(), logger))
	},
	RunE: runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")

	rootCmd.Flags().BoolP("number", "n", false, "append a random 4-digit number to each name")
	rootCmd.Flags().StringP("style", "s", "", "naming style (see 'moniker styles')")
	rootCmd.Flags().BoolP("interactive", "i", false, "pick the style interactively (requires a terminal)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := slogger.FromContext(cmd.Context())

	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("init config loader: %w", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Debug("config loaded", "path", loader.Path())

	amount := cfg.Default.Amount
	if len(args) == 1 {
		amount, err = strconv.Atoi(args[0])
		if err != nil || amount < 1 {
			return fmt.Errorf("invalid amount %q: must be a positive integer", args[0])
		}
	}

	style, err := cfg.Style()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("style") {
		name, _ := cmd.Flags().GetString("style")
		style, err = namegen.ParseStyle(name)
		if err != nil {
			return err
		}
	}

	numbered := cfg.Default.Numbered
	if cmd.Flags().Changed("number") {
		numbered, _ = cmd.Flags().GetBool("number")
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		style, numbered, err = pickInteractive(style, numbered)
		if err != nil {
			return err
		}
	}

	log.Info("generating names", "style", style.String(), "numbered", numbered, "amount", amount)

	gen, err := namegen.New(cfg.Adjectives(), cfg.Nouns(), namegen.Config{
		Style:    style,
		Numbered: numbered,
	})
	if err != nil {
		return fmt.Errorf("new generator: %w", err)
	}

	for _, name := range gen.Take(amount) {
		fmt.Println(name)
	}

	return nil
}

// pickInteractive asks the user for a style and number preference.
func pickInteractive(style namegen.Style, numbered bool) (namegen.Style, bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return style, numbered, errors.New("interactive mode requires a terminal")
	}

	p := prompt.New()

	names := namegen.StyleNames()
	idx, err := p.Choice("Naming style", names)
	if err != nil {
		return style, numbered, err
	}
	style, err = namegen.ParseStyle(names[idx])
	if err != nil {
		return style, numbered, err
	}

	// Numbered always appends a number, so the question is redundant there.
	if style != namegen.Numbered {
		numbered, err = p.Confirm("Append a random number?", "Adds a 4-digit suffix like 0042.")
		if err != nil {
			return style, numbered, err
		}
	}

	return style, numbered, nil
}
