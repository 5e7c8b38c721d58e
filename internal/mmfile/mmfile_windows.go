//go:build windows

package mmfile

import (
	"os"
)

// Map reads the whole file into memory; Windows builds do not map.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
