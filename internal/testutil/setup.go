package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestFile resolves a path relative to the repository root from whichever
// package directory the test runs in. Calls t.Fatal if the file is missing.
func TestFile(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../" + relativePath,          // From a top-level package (e.g., mgf/)
		"../../" + relativePath,       // From package two levels deep (e.g., cmd/mgfctl/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Fatalf("test file not found at any candidate path starting from: %s", relativePath)
	return ""
}

// ReadFile returns the contents of a repository test file.
func ReadFile(t *testing.T, relativePath string) []byte {
	t.Helper()
	data, err := os.ReadFile(TestFile(t, relativePath))
	if err != nil {
		t.Fatalf("Failed to read test file: %v", err)
	}
	return data
}

// CopyToTemp copies a repository test file into a fresh temporary directory
// under tempName and returns the new path. Tests that write next to the
// file (index sidecars) must work on a copy.
//
// Example:
//
//	path := testutil.CopyToTemp(t, testutil.SmallMGF, "small.mgf")
func CopyToTemp(t *testing.T, relativePath, tempName string) string {
	t.Helper()

	dst := filepath.Join(t.TempDir(), tempName)
	copyFile(t, TestFile(t, relativePath), dst)
	return dst
}

// WriteTemp writes content to tempName in a fresh temporary directory and
// returns the path.
func WriteTemp(t *testing.T, tempName, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), tempName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

// Block renders one MGF record: BEGIN IONS, the given lines, END IONS.
func Block(lines ...string) string {
	var b strings.Builder
	b.WriteString("BEGIN IONS\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("END IONS\n")
	return b.String()
}

// copyFile copies a file from src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy test file: %v", copyErr)
	}
}
