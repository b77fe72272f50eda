package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zerohexer/cspnet/internal/app"
	"github.com/zerohexer/cspnet/internal/config"
	"github.com/zerohexer/cspnet/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		logger := logging.New(cfg.LogFormat, cfg.LogLevel)
		cfg.LogNotices(logger)

		printBanner(cmd.OutOrStdout(), cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.Run(ctx, cfg); err != nil {
			slog.Error("Server stopped with error", "error", err)
			return err
		}
		slog.Info("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides CSPNET_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func printBanner(w io.Writer, cfg *config.Config) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render("CSP-NET " + version)
	contentSource := "built-in"
	if cfg.ContentPath != "" {
		contentSource = cfg.ContentPath
	}
	details := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf(
		"listening on %s\ncontent: %s\nnavigation limit: %d/min",
		cfg.Addr, contentSource, cfg.NavRateLimit,
	))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, details))
	fmt.Fprintln(w, box)
}
