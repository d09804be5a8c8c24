// Package testdata locates downloaded Unicode Character Database files
// for testing. Run the download program to fetch them:
//
//    go run download.go
//
// Tests are expected to skip when a UCD file has not been downloaded.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// UCDAvailable reports whether the given ucd file has been downloaded.
// Tests consuming UCD files should check this and skip when it reports
// false.
func UCDAvailable(file string) bool {
	_, err := os.Stat(UCDPath(file))
	return err == nil
}

// UCDReader returns a reader for the given ucd file for testing.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// UCDPath returns the path for the given ucd file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
