package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrUnknownFormat is returned for files whose extension maps to no format.
var ErrUnknownFormat = errors.New("catalog: unknown file format")

// FileFormat represents the supported catalog encodings
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatTOML               // [[assets]] tables
	FormatMsgpack            // msgpack-encoded document
	FormatJSON               // JSON document
)

// FormatInfo contains metadata about a catalog file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatTOML: {
		Format:      FormatTOML,
		Description: "TOML Catalog",
		Extensions:  []string{".toml"},
		MinSize:     0, // an empty file is an empty catalog
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Catalog",
		Extensions:  []string{".msgpack", ".mp"},
		MinSize:     1,
	},
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Catalog",
		Extensions:  []string{".json"},
		MinSize:     2, // {}
	},
}

func (f FileFormat) String() string {
	if info, ok := GetFormatInfo(f); ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat picks a format from the file extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if ext == e {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// ValidateFileFormat checks that an existing file is large enough for format.
func ValidateFileFormat(filename string, format FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	info, ok := GetFormatInfo(format)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if fileInfo.Size() < info.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), info.Description, info.MinSize)
	}

	log.Debugf("Catalog file %s validated as %s", filename, info.Description)
	return nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
