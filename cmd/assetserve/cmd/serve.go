package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/assetserve/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	servePort int
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to bind (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	engine, source, err := buildEngine()
	if err != nil {
		return err
	}

	opts := server.HTTPOptions{
		Addr:        appConfig.Server.Addr,
		Port:        appConfig.Server.Port,
		AllowOrigin: appConfig.Server.AllowOrigin,
		ReadTimeout: appConfig.ReadTimeout(),
	}
	if cmd.Flags().Changed("port") {
		opts.Port = servePort
	}
	if cmd.Flags().Changed("addr") {
		opts.Addr = serveAddr
	}

	srv := server.NewHTTPServer(engine, opts)
	if err := srv.Listen(); err != nil {
		return err
	}

	showStartupInfo(srv.URL(), source, engine.Stats().Total)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		return err
	}
	log.Info("Exiting...")
	return nil
}
