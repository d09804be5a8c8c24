//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Download the UCD files the tests consume. The Unicode version is pinned
// to stay close to the golang.org/x/text data tables the package builds
// its case folding table from.

func main() {
	files := []string{"CaseFolding.txt"}
	for _, file := range files {
		url := "https://www.unicode.org/Public/12.0.0/ucd/" + file
		if err := downloadUCDFile(url, filepath.Join("ucd", file)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
			os.Exit(1)
		}
	}
}

func downloadUCDFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %v: %v", url, resp.Status)
	}

	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
