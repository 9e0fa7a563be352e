package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/moniker/internal/namegen"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available naming styles",
	Long: `List the available naming styles with an example of each shape.

Examples use the word pair "rusty"/"nail" with a fixed random source, so
the output is stable across runs.`,
	Example: `  # Show styles as a table
  moniker styles

  # Show styles as YAML for scripting
  moniker styles -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("get output flag: %w", err)
		}

		previews, err := stylePreviews()
		if err != nil {
			return err
		}

		switch output {
		case "text":
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintln(w, "STYLE\tEXAMPLE"); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			for _, p := range previews {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Example); err != nil {
					return fmt.Errorf("write style: %w", err)
				}
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
		case "yaml":
			out, err := yaml.Marshal(previews)
			if err != nil {
				return fmt.Errorf("marshal styles: %w", err)
			}
			fmt.Print(string(out))
		default:
			return fmt.Errorf("unknown output format %q (valid: text, yaml)", output)
		}

		return nil
	},
}

// stylePreview pairs a style name with a stable example of its shape.
type stylePreview struct {
	Name    string `yaml:"name"`
	Example string `yaml:"example"`
}

func stylePreviews() ([]stylePreview, error) {
	styles := namegen.Styles()
	previews := make([]stylePreview, 0, len(styles))

	for _, style := range styles {
		gen, err := namegen.New([]string{"rusty"}, []string{"nail"}, namegen.Config{
			Style: style,
			// Fixed seed keeps the Numbered example stable.
			Rand: rand.New(rand.NewSource(1)),
		})
		if err != nil {
			return nil, fmt.Errorf("new generator: %w", err)
		}
		previews = append(previews, stylePreview{
			Name:    style.String(),
			Example: gen.Next(),
		})
	}

	return previews, nil
}

func init() {
	rootCmd.AddCommand(stylesCmd)

	stylesCmd.Flags().StringP("output", "o", "text", "output format (text, yaml)")
}
