package cmd

import (
	"fmt"
	"os"

	"github.com/bastiangx/assetserve/internal/logger"
	"github.com/bastiangx/assetserve/internal/utils"
	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/bastiangx/assetserve/pkg/catalog"
	"github.com/bastiangx/assetserve/pkg/config"
	"github.com/bastiangx/assetserve/pkg/rank"
	"github.com/bastiangx/assetserve/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
	AppName = "assetserve"
	gh      = "https://github.com/bastiangx/assetserve"
)

var (
	configPath  string
	catalogPath string
	debugMode   bool
	resetConfig bool

	appConfig  *config.Config
	activePath string
)

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "AssetServe: prefix search over a crypto and stock catalog",
	Long:  "Ranked prefix search, recommendations and stats for a small in-memory asset catalog.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(os.Stderr, log.WarnLevel, debugMode)

		if resetConfig {
			if err := config.RebuildConfigFile(); err != nil {
				return fmt.Errorf("reset config: %w", err)
			}
			log.Info("Default config file rebuilt")
		}

		cfg, path, err := config.LoadConfigWithPriority(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		appConfig, activePath = cfg, path
		log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.toml, .json, .msgpack); built-in seed data if empty")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Toggle debug mode")
	rootCmd.PersistentFlags().BoolVar(&resetConfig, "reset-config", false, "Overwrite the default config.toml with built-in defaults")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ipcCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadAssets returns the catalog named by --catalog or the config file,
// falling back to the built-in seed records.
func loadAssets() ([]asset.Asset, string, error) {
	path := catalogPath
	if path == "" {
		path = appConfig.Catalog.Path
	}
	if path == "" {
		return asset.Seed(), "built-in", nil
	}

	if resolver, err := utils.NewPathResolver(AppName); err == nil {
		path = resolver.ResolveFile(path)
	} else {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}

	assets, err := catalog.Load(path)
	if err != nil {
		return nil, path, err
	}
	return assets, utils.GetAbsolutePath(path), nil
}

// buildEngine loads the catalog and wires the search pipeline.
func buildEngine() (*search.Engine, string, error) {
	assets, source, err := loadAssets()
	if err != nil {
		return nil, source, fmt.Errorf("load catalog: %w", err)
	}
	store := asset.NewStore(assets)
	scorer := rank.NewScorer(appConfig.RankOptions())
	engine := search.New(store, scorer, appConfig.SearchOptions())
	log.Debugf("Engine ready: %d assets from %s, preferences %v", store.Len(), source, scorer.Preferences())
	return engine, source, nil
}
