package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/infrastructure/colorscheme"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose desktop color-scheme detection",
	Long: `Doctor runs every color-scheme detector and shows which ones are
available, what each answers, and which one decides the system theme.

Detectors are consulted by priority: XDG desktop portal, GTK_THEME,
macOS defaults, gsettings and finally the terminal background.

Examples:
  shade doctor
  shade doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output as JSON")
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	pref := app.Resolver.Refresh()
	detectors := app.Resolver.Detectors()

	report := styles.DoctorReport{
		Source:      pref.Source,
		PrefersDark: pref.PrefersDark,
		Detectors:   make([]styles.DoctorDetector, len(detectors)),
	}
	if pref.Source == colorscheme.SourceConfig {
		report.Forced = strings.TrimSpace(app.Config.System.Force)
	}

	// Detectors shell out or call D-Bus with their own timeouts; check them in parallel.
	var g errgroup.Group
	g.SetLimit(len(detectors) + 1)
	for i, d := range detectors {
		g.Go(func() error {
			entry := styles.DoctorDetector{
				Name:      d.Name(),
				Priority:  d.Priority(),
				Available: d.Available(),
			}
			if entry.Available {
				entry.PrefersDark, entry.Detected = d.Detect()
			}
			report.Detectors[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("check detectors: %w", err)
	}

	if doctorJSON {
		return writeJSON(report)
	}
	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(report))
	return nil
}
