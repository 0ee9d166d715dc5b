// Package cli handles cmd line input for querying the catalog by hand.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/assetserve/internal/utils"
	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/bastiangx/assetserve/pkg/search"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var symbolStyle = lipgloss.NewStyle().Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})

// InputHandler reads queries line by line and prints ranked results.
//
// Plain lines are searched with the current type filter. A few commands
// start with a colon:
//
//	:type crypto   set the filter (":type" alone clears it)
//	:rec           recommend for the current filter
//	:stats         catalog summary
type InputHandler struct {
	searcher     search.Searcher
	typeFilter   string
	requestCount int
	out          *log.Logger
}

// NewInputHandler prints through out, which is usually the default logger.
func NewInputHandler(searcher search.Searcher, typeFilter string, out *log.Logger) *InputHandler {
	return &InputHandler{
		searcher:   searcher,
		typeFilter: typeFilter,
		out:        out,
	}
}

// Start loops until in is exhausted. EOF is a normal exit.
func (h *InputHandler) Start(in io.Reader) error {
	h.out.Print("AssetServe CLI")
	h.out.Print("type a prefix and press Enter (:type, :rec, :stats; Ctrl+D to exit):")

	scanner := bufio.NewScanner(in)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.HandleLine(line)
	}
}

// HandleLine runs one command or query.
func (h *InputHandler) HandleLine(line string) {
	h.requestCount++

	switch {
	case line == ":stats":
		h.PrintStats(h.searcher.Stats())
	case line == ":rec":
		h.PrintResults("recommend", h.searcher.Recommend(h.typeFilter))
	case line == ":type" || strings.HasPrefix(line, ":type "):
		filter := strings.TrimSpace(strings.TrimPrefix(line, ":type"))
		if filter != "" && !asset.Type(filter).Valid() {
			h.out.Errorf("Unknown type %q (want crypto or stock)", filter)
			return
		}
		h.typeFilter = filter
		h.out.Infof("Type filter: %q", filter)
	case strings.HasPrefix(line, ":"):
		h.out.Errorf("Unknown command: %s", line)
	default:
		if utils.IsRepetitive(line) {
			h.out.Debugf("Query '%s' looks like keyboard noise", line)
		}
		start := time.Now()
		results := h.searcher.Search(line, h.typeFilter)
		h.out.Debugf("Took [ %v ] for query '%s'", time.Since(start), line)
		h.PrintMatches(line, results)
	}
}

// PrintResults prints a ranked list as a table.
func (h *InputHandler) PrintResults(label string, results []asset.Asset) {
	h.printTable(label, "", results)
}

// PrintMatches prints search results for query, noting which field each
// asset matched on.
func (h *InputHandler) PrintMatches(query string, results []asset.Asset) {
	h.printTable(query, query, results)
}

func (h *InputHandler) printTable(label, query string, results []asset.Asset) {
	if len(results) == 0 {
		h.out.Warnf("No assets found for '%s'", label)
		return
	}
	h.out.Printf("Found %d assets for '%s':", len(results), label)
	for i, a := range results {
		row := fmt.Sprintf("%2d. %-18s %-26s %-6s %-10s score %3d  cap $%s",
			i+1, symbolStyle.Render(a.Symbol), a.Name, a.Type, a.Category, h.searcher.Display(a),
			utils.FormatWithCommas(a.MarketCap))
		if field := matchedField(a, query); field != "" {
			row += "  via " + field
		}
		h.out.Print(row)
	}
}

// matchedField names the first indexed field of a that starts with query.
func matchedField(a asset.Asset, query string) string {
	if query == "" {
		return ""
	}
	switch {
	case utils.HasPrefixFold(a.Name, query):
		return "name"
	case utils.HasPrefixFold(a.Symbol, query):
		return "symbol"
	case utils.HasPrefixFold(a.Category, query):
		return "category"
	}
	return ""
}

// PrintStats prints the catalog summary.
func (h *InputHandler) PrintStats(st search.Stats) {
	h.out.Print("Catalog",
		"total", st.Total,
		"cryptos", st.Cryptos,
		"stocks", st.Stocks,
		"avgScore", st.AvgScore,
		"totalCap", fmt.Sprintf("%sT", st.TotalCap.StringFixed(2)),
	)
}

// RequestCount is the number of lines handled so far.
func (h *InputHandler) RequestCount() int {
	return h.requestCount
}
