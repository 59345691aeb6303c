package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"aghctl/internal/app"
	"aghctl/internal/config"
	"aghctl/internal/control"
	"aghctl/internal/diag"
	"aghctl/internal/launcher"
	"aghctl/internal/menu"
)

var (
	configPath string
	appCfg     config.Config
	diagLog    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aghctl [start|stop|status]",
	Short: "aghctl: convenience wrapper around the AdGuard Home control binary",
	Long: `aghctl shells out to the AdGuard Home control binary to start, stop or
query the DNS-filtering daemon. Run without arguments for an interactive
menu. When started from a desktop quick-launcher without a terminal, it
re-launches itself inside one.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appCfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		diagLog = diag.Open(appCfg.Diag.Enabled, appCfg.Diag.Path)

		signals := launcher.Classify(diagLog)
		if launcher.LauncherMode(signals) && !launcher.Relaunched() {
			// On success the process image is replaced and we never return.
			return launcher.Relaunch(appCfg.Terminals, os.Args[1:], diagLog)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.Context(), controller())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the optional YAML config file")
}

func controller() *app.App {
	return app.New(app.Options{Config: appCfg, Log: diagLog})
}

func runMenu(ctx context.Context, ctrl *app.App) error {
	m := &menu.Menu{
		In:  os.Stdin,
		Out: os.Stdout,
		StatusLine: func() string {
			report, err := ctrl.Status(ctx)
			if err != nil {
				return "unavailable (" + err.Error() + ")"
			}
			return report.State.String()
		},
		Execute: func(a menu.Action) {
			switch a {
			case menu.ActionStart:
				runAndPrint(ctx, ctrl.Start, "Starting AdGuard Home...")
			case menu.ActionStop:
				runAndPrint(ctx, ctrl.Stop, "Stopping AdGuard Home...")
			case menu.ActionStatus:
				queryAndPrintStatus(ctx, ctrl)
			}
		},
	}
	return m.Run()
}

func main() {
	normalizeVerbArg()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// normalizeVerbArg lowercases a single verb argument so that
// `aghctl START` dispatches like `aghctl start`.
func normalizeVerbArg() {
	if len(os.Args) != 2 {
		return
	}
	if verb, err := control.ParseVerb(os.Args[1]); err == nil {
		os.Args[1] = string(verb)
	}
}
