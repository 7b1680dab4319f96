package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/filter-today/filterctl/internal/api"
	"github.com/filter-today/filterctl/internal/cache"
	"github.com/filter-today/filterctl/internal/calendar"
	"github.com/filter-today/filterctl/internal/config"
	"github.com/filter-today/filterctl/internal/session"
	"github.com/filter-today/filterctl/internal/state"
	"github.com/filter-today/filterctl/internal/ui"
)

var (
	cfgFile     string
	jsonOutput  bool
	baseURLFlag string
	appConfig   *config.Config
	stateStore  *state.Store
	client      *api.Client
	toneCache   *cache.Store
	theme       ui.Theme
)

var rootCmd = &cobra.Command{
	Use:   "filterctl",
	Short: "A Filter.today diary client",
	Long: `filterctl is a terminal client for the Filter.today diary service:
a tone-map calendar of your month, one colored record per day, with
emotion stats and keyword analysis.

Run it with no arguments to open the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if baseURLFlag != "" {
			appConfig.BaseURL = baseURLFlag
		}

		stateStore, err = state.NewStore(appConfig.StateDir)
		if err != nil {
			return fmt.Errorf("initializing state directory: %w", err)
		}

		client, err = api.New(appConfig.BaseURL, stateStore)
		if err != nil {
			return fmt.Errorf("initializing API client: %w", err)
		}

		// A broken local cache degrades to live-only fetches.
		toneCache, err = cache.Open(appConfig.StateDir)
		if err != nil {
			log.Printf("tonemap cache unavailable: %v", err)
			toneCache = nil
		}

		theme = ui.ResolveTheme(appConfig.Theme)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: print the current month's calendar
			return tonemapRun(os.Stdout, now.Year(), int(now.Month()))
		}

		sess := newSession()
		dash := ui.NewDashboard(client, monthCache(), sess, theme, now.Year(), int(now.Month()), now)
		return ui.RunDashboard(dash)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Filter.today server URL")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// monthCache adapts the optional cache store to the fetch-layer interface
// without producing a non-nil interface around a nil pointer.
func monthCache() api.ToneMapCache {
	if toneCache == nil {
		return nil
	}
	return toneCache
}

func newSession() *session.Session {
	sess := session.New(client, client, client, cliConfirmer{}, appConfig.DefaultColor)
	if appConfig.Assist {
		sess.SetMode(session.ModeAssisted)
	}
	return sess
}

func tonemapRun(w io.Writer, year, month int) error {
	tm, stale, err := api.MonthToneMap(context.Background(), client, monthCache(), year, month)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, tm)
	}

	g := calendar.MonthGrid(year, month)
	cells := calendar.BuildCells(g, tm, "", time.Now())
	fmt.Fprintln(w, ui.RenderCalendar(g, cells, theme, stale))
	fmt.Fprintln(w, ui.RenderEmotionLegend())
	return nil
}
