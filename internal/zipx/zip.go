// Package zipx extracts zip containers such as .1pux archives. It is the
// archive-decompression collaborator of the import pipeline.
package zipx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/puxvault/internal/common"
)

// Extract unpacks the zip archive at src into dst. Entries resolving
// outside dst are rejected. All failures wrap common.ErrUnzipFailure.
func Extract(src, dst string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnzipFailure, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractFile(f, dst); err != nil {
			return fmt.Errorf("%w: %v", common.ErrUnzipFailure, err)
		}
	}

	return nil
}

// ExtractToTemp unpacks src into a fresh temporary directory and returns
// its path. The caller owns the directory and removes it when done.
func ExtractToTemp(src string) (string, error) {
	dir, err := os.MkdirTemp("", "puxvault-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnzipFailure, err)
	}

	if err := Extract(src, dir); err != nil {
		_ = os.RemoveAll(dir)
		return "", err
	}

	return dir, nil
}

func extractFile(f *zip.File, dst string) error {
	path := filepath.Join(dst, f.Name)

	// Zip-slip guard: the joined path must stay inside dst.
	if !strings.HasPrefix(path, filepath.Clean(dst)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal entry path: %s", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(path, 0o770)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o770); err != nil {
		return err
	}

	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o660)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return nil
}
