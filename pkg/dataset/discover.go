/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"log/slog"
	"os"
	"path/filepath"

	cnserrors "github.com/NVIDIA/marketlint/pkg/errors"
)

// Discover returns the paths of the regular files directly inside dir,
// in directory-read order, skipping subdirectories and names matching
// any of the exclude patterns.
func Discover(dir string, exclude []string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeNotFound, "cannot open dataset directory", err,
			map[string]any{"dir": dir})
	}
	defer f.Close()

	// File.ReadDir keeps the order returned by the file system; os.ReadDir would sort.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInternal, "cannot list dataset directory", err,
			map[string]any{"dir": dir})
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !isRegular(path, e) {
			slog.Debug("skipping non-regular entry", "path", path)
			continue
		}
		if MatchesAny(e.Name(), exclude) {
			slog.Debug("skipping excluded file", "path", path)
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func isRegular(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
