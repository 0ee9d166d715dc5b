package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show current version",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ AssetServe ] Ranked prefix search for crypto and stocks")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)
	},
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(url, source string, assets int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	banner := lipgloss.NewStyle().Bold(true).
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})

	log.Print(banner.Render("AssetServe"))
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("catalog: ( %s ), %d assets", source, assets)
	log.Infof("listening: %s", url)
	log.Info("routes: /api/search /api/recommend /api/stats /api/health")
	log.Info("status: ready")
	log.Print("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
