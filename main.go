package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phravins/stackgen/internal/catalog"
	"github.com/phravins/stackgen/internal/config"
	"github.com/phravins/stackgen/internal/logging"
	"github.com/phravins/stackgen/internal/tui"
	"github.com/phravins/stackgen/internal/web"
)

var (
	configFile string
	cfg        *config.Config
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:     "stackgen",
	Version: config.Version,
	Short:   "Pick a tech stack and generate a project idea",
	Long: `stackgen is a project stack generator:
- Pick one frontend, backend, database and tool
- Generate a project idea
- Use it in the terminal or serve it as a web page`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New(configFile)
		if f := cmd.Flags().Lookup("listen"); f != nil {
			if err := v.BindPFlag("listen_addr", f); err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.Load(v)
		if err != nil {
			return err
		}

		// The TUI owns the terminal, so it logs to a file; everything else to stderr.
		logFile := "stderr"
		if cmd == cmd.Root() {
			logFile = cfg.LogFile
		}
		logger, err = logging.New(cfg.LogLevel, logFile)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("starting terminal ui", zap.String("version", config.Version))
		return tui.Run(tui.Options{
			Catalog:          catalog.Default(),
			MobileBreakpoint: cfg.MobileBreakpoint,
			DrawerTransition: cfg.DrawerTransition,
			GlamourStyle:     cfg.GlamourStyle,
			Logger:           logger,
		})
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generator as a web page",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Serving stackgen on %s\n", cfg.ListenAddr)
		return web.NewServer(catalog.Default(), logger).ListenAndServe(ctx, cfg.ListenAddr)
	},
}

var (
	catalogFormat  string
	catalogNoColor bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the filter catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		switch catalogFormat {
		case "yaml":
			return c.WriteYAML(cmd.OutOrStdout(), cfg.Color && !catalogNoColor)
		case "text":
			_, err := fmt.Fprint(cmd.OutOrStdout(), c.Text())
			return err
		default:
			return fmt.Errorf("unknown format %q (want yaml or text)", catalogFormat)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.stackgen.yaml)")

	serveCmd.Flags().String("listen", "", "address to listen on (default :8080)")
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "yaml", "output format: yaml or text")
	catalogCmd.Flags().BoolVar(&catalogNoColor, "no-color", false, "disable syntax highlighting")

	rootCmd.AddCommand(serveCmd, catalogCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the stackgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stackgen %s\n", config.Version)
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
