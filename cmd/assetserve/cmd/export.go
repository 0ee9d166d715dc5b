package cmd

import (
	"fmt"

	"github.com/bastiangx/assetserve/pkg/catalog"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the active catalog to a file",
	Long: `Writes the catalog in the format picked by the file extension:
.toml, .json, or .msgpack/.mp. With no --catalog this is the built-in data.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, source, err := loadAssets()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if err := catalog.Save(args[0], assets); err != nil {
			return err
		}
		log.Infof("Exported %d assets from %s to %s", len(assets), source, args[0])
		return nil
	},
}
