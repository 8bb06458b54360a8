package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riordanpawley/outcome/internal/scenario"
	"github.com/riordanpawley/outcome/internal/ui/motion"
	"github.com/riordanpawley/outcome/internal/ui/overlay"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type renderFlags struct {
	width  int
	height int
	list   bool
	color  bool

	// Ad-hoc outcome, used instead of a scenario when title is set
	variant string
	kind    string
	title   string
	message string
	item    string
	price   string
	id      string
	tx      string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [scenario]",
		Short: "Print the settled overlay for a scenario",
		Long: `Print one frame of a scenario's outcome overlay, fully entered, and exit.
The scenario is matched by name, case-insensitively; without one the first
scenario is used. With --title the outcome is built from flags instead.
Colour is kept only when writing to a terminal unless --color is given.`,
		Example: `  outcome render "Submit transaction"
  outcome render --variant success --type purchase --title "Purchase complete" \
    --item "Art #12" --price 2.5 --tx 5VfYmGBjvxKjKjuDvPm4DqTnHTzN`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sc, err := flags.adhoc()
			if err != nil {
				return err
			}
			if sc == nil {
				scenarios, err := loadScenarios(cfg.Demo.Scenarios)
				if err != nil {
					return err
				}
				if flags.list {
					return listScenarios(out, scenarios)
				}
				found, err := findScenario(scenarios, args)
				if err != nil {
					return err
				}
				sc = &found
			}

			width, height := frameSize(out, flags.width, flags.height)
			c := overlay.NewController(
				overlay.WithMotion(motion.Options{ReducedMotion: true}),
				overlay.WithCardWidth(cfg.Layout.CardWidth),
			)
			c.SetSize(width, height)
			c.SetRequest(sc.Request(true, nil, nil))

			view := c.View()
			if !flags.color && !isTerminal(out) {
				view = ansi.Strip(view)
			}
			_, err = fmt.Fprintln(out, view)
			return err
		},
	}

	cmd.Flags().IntVarP(&flags.width, "width", "W", 0, "Frame width (default terminal width)")
	cmd.Flags().IntVarP(&flags.height, "height", "H", 0, "Frame height (default terminal height)")
	cmd.Flags().BoolVarP(&flags.list, "list", "l", false, "List scenarios instead of rendering")
	cmd.Flags().BoolVar(&flags.color, "color", false, "Keep ANSI colour when not writing to a terminal")
	cmd.Flags().StringVar(&flags.variant, "variant", "failure", "Ad-hoc outcome variant: failure or success")
	cmd.Flags().StringVar(&flags.kind, "type", "", "Ad-hoc outcome type: error, warning, purchase, verification, general")
	cmd.Flags().StringVar(&flags.title, "title", "", "Ad-hoc outcome title")
	cmd.Flags().StringVar(&flags.message, "message", "", "Ad-hoc outcome message")
	cmd.Flags().StringVar(&flags.item, "item", "", "Ad-hoc detail item name (success only)")
	cmd.Flags().StringVar(&flags.price, "price", "", "Ad-hoc detail price (success only)")
	cmd.Flags().StringVar(&flags.id, "id", "", "Ad-hoc detail item id (success only)")
	cmd.Flags().StringVar(&flags.tx, "tx", "", "Ad-hoc detail transaction hash (success only)")

	return cmd
}

// adhoc builds a scenario from flags, or returns nil when no title was given
func (f *renderFlags) adhoc() (*scenario.Scenario, error) {
	if f.title == "" {
		return nil, nil
	}
	sc := &scenario.Scenario{
		Name:    "adhoc",
		Variant: f.variant,
		Type:    f.kind,
		Title:   f.title,
		Message: f.message,
	}
	if f.item != "" || f.price != "" || f.id != "" || f.tx != "" {
		sc.Detail = &scenario.DetailSpec{
			Name:            f.item,
			Price:           f.price,
			ID:              f.id,
			TransactionHash: f.tx,
		}
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func loadScenarios(path string) ([]scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

func findScenario(scenarios []scenario.Scenario, args []string) (scenario.Scenario, error) {
	if len(args) == 0 {
		return scenarios[0], nil
	}
	for _, sc := range scenarios {
		if strings.EqualFold(sc.Name, args[0]) {
			return sc, nil
		}
	}
	return scenario.Scenario{}, fmt.Errorf("unknown scenario %q (see render --list)", args[0])
}

func listScenarios(out io.Writer, scenarios []scenario.Scenario) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVARIANT\tTYPE\tTITLE")
	for _, sc := range scenarios {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sc.Name, sc.Variant, sc.Type, sc.Title)
	}
	return w.Flush()
}

// frameSize fills unset dimensions from the terminal behind out
func frameSize(out io.Writer, width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th := fallbackWidth, fallbackHeight
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			tw, th = w, h
		}
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
