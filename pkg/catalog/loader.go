// Package catalog reads and writes asset catalogs on disk. A catalog replaces
// the built-in seed records when the server is started with one.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/assetserve/pkg/asset"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrInvalidAsset is wrapped by every validation failure.
var ErrInvalidAsset = errors.New("catalog: invalid asset")

// Version is written into every saved catalog.
const Version = 1

// File is the on-disk document shared by all formats.
type File struct {
	Version int           `toml:"version" json:"version" msgpack:"version"`
	Assets  []asset.Asset `toml:"assets" json:"assets" msgpack:"assets"`
}

// Load reads the catalog at path, picking the decoder from its extension,
// and validates every record.
func Load(path string) ([]asset.Asset, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateFileFormat(path, format); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	assets, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	log.Debugf("Loaded %d assets from %s (%s)", len(assets), path, format)
	return assets, nil
}

// Decode parses a catalog document and validates every record.
func Decode(data []byte, format FileFormat) ([]asset.Asset, error) {
	var doc File
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if doc.Version > Version {
		log.Warnf("Catalog version %d is newer than supported version %d", doc.Version, Version)
	}

	for i, a := range doc.Assets {
		if err := Validate(a); err != nil {
			return nil, fmt.Errorf("asset %d (%s): %w", i, a.Symbol, err)
		}
	}
	if doc.Assets == nil {
		doc.Assets = []asset.Asset{}
	}
	return doc.Assets, nil
}

// Save writes assets to path in the format implied by its extension.
func Save(path string, assets []asset.Asset) error {
	format, err := DetectFileFormat(path)
	if err != nil {
		return err
	}
	data, err := Encode(assets, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	log.Debugf("Saved %d assets to %s (%s)", len(assets), path, format)
	return nil
}

// Encode renders assets as a catalog document.
func Encode(assets []asset.Asset, format FileFormat) ([]byte, error) {
	doc := File{Version: Version, Assets: assets}
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encode %s: %w", format, err)
		}
		return buf.Bytes(), nil
	case FormatMsgpack:
		data, err := msgpack.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", format, err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", format, err)
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// Validate checks the record invariants the pipeline relies on.
func Validate(a asset.Asset) error {
	switch {
	case !a.Type.Valid():
		return fmt.Errorf("%w: type %q is not crypto or stock", ErrInvalidAsset, a.Type)
	case a.BaseScore < 0 || a.BaseScore > 100:
		return fmt.Errorf("%w: base score %d outside [0,100]", ErrInvalidAsset, a.BaseScore)
	case a.MarketCap < 0:
		return fmt.Errorf("%w: negative market cap %d", ErrInvalidAsset, a.MarketCap)
	case !finite(a.Price) || !finite(a.Change):
		return fmt.Errorf("%w: price and change must be finite", ErrInvalidAsset)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
