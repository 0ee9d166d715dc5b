package cmd

import (
	"os"

	"github.com/bastiangx/assetserve/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var ipcCmd = &cobra.Command{
	Use:   "ipc",
	Short: "Answer msgpack requests on stdin/stdout",
	Long:  "Runs the msgpack IPC loop for editor plugins and other local clients. Logs go to stderr.",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, source, err := buildEngine()
		if err != nil {
			return err
		}
		log.Debugf("spawning IPC over %s catalog", source)
		return server.NewIPCServer(engine, os.Stdin, os.Stdout).Start()
	},
}
