package render

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/gzip"
)

// Archive bundles the regular files of a frame directory into a
// tar.gz at path, in lexical name order.
func Archive(dir, path string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := addFile(tw, filepath.Join(dir, entry.Name()), entry.Name()); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	hdr.Name = name

	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
