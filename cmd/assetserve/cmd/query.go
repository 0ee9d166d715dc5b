package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/assetserve/internal/cli"
	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	queryType        string
	queryInteractive bool
	queryRecommend   bool
	queryStats       bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the catalog from the terminal",
	Long: `Runs a single search and prints the ranked results.
With -i, reads queries line by line instead.`,
	Args: cobra.ArbitraryArgs,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryType, "type", "t", "", "Restrict to crypto or stock")
	queryCmd.Flags().BoolVarP(&queryInteractive, "interactive", "i", false, "Read queries from stdin")
	queryCmd.Flags().BoolVar(&queryRecommend, "rec", false, "Show recommendations instead of searching")
	queryCmd.Flags().BoolVar(&queryStats, "stats", false, "Show catalog stats")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryType != "" && !asset.Type(queryType).Valid() {
		return fmt.Errorf("unknown type %q (want crypto or stock)", queryType)
	}

	engine, _, err := buildEngine()
	if err != nil {
		return err
	}

	log.SetReportTimestamp(false)
	handler := cli.NewInputHandler(engine, queryType, log.Default())

	switch {
	case queryInteractive:
		return handler.Start(os.Stdin)
	case queryStats:
		handler.PrintStats(engine.Stats())
	case queryRecommend:
		handler.PrintResults("recommend", engine.Recommend(queryType))
	default:
		text := strings.Join(args, " ")
		handler.PrintMatches(text, engine.Search(text, queryType))
	}
	return nil
}
