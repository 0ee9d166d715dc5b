// Package search is the query pipeline: it turns (query, type) pairs into
// ranked, deduplicated, capped asset lists and computes catalog statistics.
package search

import "github.com/bastiangx/assetserve/pkg/asset"

// Searcher is what the transports need from the pipeline.
type Searcher interface {
	// Search returns assets whose name, symbol or category starts with
	// query, or every asset when query is empty, best score first.
	Search(query, typeFilter string) []asset.Asset

	// Recommend returns the top-scored assets of the given type.
	Recommend(typeFilter string) []asset.Asset

	// Stats summarizes the whole catalog.
	Stats() Stats

	// Display is the integer score shown next to an asset.
	Display(a asset.Asset) int
}
