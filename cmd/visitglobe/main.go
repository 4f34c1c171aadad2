package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"visitglobe/internal/config"
	"visitglobe/internal/tui"
)

var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "visitglobe:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "visitglobe",
		Short:         "Terminal globe of the countries you have visited",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runView,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "view",
		Short: "Open the interactive globe (default)",
		Args:  cobra.NoArgs,
		RunE:  runView,
	}, exportCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v, err := config.NewViper(cmd.Flags(), configFile)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// viewLogger writes to the log file when one is set. The terminal belongs to
// the viewer, so otherwise nothing is logged.
func viewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	return zc.Build()
}

func runView(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := viewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	w, err := loadWorld(cfg, logger)
	if err != nil {
		return err
	}
	defer w.close()

	m := tui.New(tui.Options{
		Countries: w.countries,
		Visited:   w.set,
		Builder:   w.builder,
		ImagesDir: cfg.Images,
		Logger:    logger,
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
