package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes data as TOML into filePath, truncating any previous content.
func SaveTOMLFile(data any, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create %s: %w", filePath, err)
	}
	defer file.Close()
	if err := toml.NewEncoder(file).Encode(data); err != nil {
		return fmt.Errorf("encode %s: %w", filePath, err)
	}
	return nil
}

// GetAbsolutePath returns the absolute path of a file, or "unknown" for an empty path.
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// GetExecutableDir returns the directory of the running binary.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus makes sure dirPath exists and probes whether it is writable.
func CheckDirStatus(dirPath string) DirCheckResult {
	result := DirCheckResult{}
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		result.Error = err
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return result
	}
	result.Exists = true
	result.Writable = testWriteAccess(dirPath)
	return result
}

func testWriteAccess(dirPath string) bool {
	probe, err := os.CreateTemp(dirPath, ".write_test_*")
	if err != nil {
		log.Debugf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}
