// Package bundle packs generated theme files into a tar.xz archive so a
// whole colourset theme can be shipped as one file.
package bundle

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// File is one entry to include in a bundle.
type File struct {
	// Name is the path recorded inside the archive.
	Name string
	// Path is the file on disk to read.
	Path string
}

// Write creates a tar.xz archive at dstPath containing the given files.
func Write(dstPath string, files []File) error {
	if len(files) == 0 {
		return fmt.Errorf("nothing to bundle")
	}

	if dir := filepath.Dir(dstPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create bundle dir: %w", err)
		}
	}

	out, err := os.Create(dstPath) // #nosec G304 - bundle path supplied by the user
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}
	defer out.Close()

	xzw, err := xz.NewWriter(out)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	for _, f := range files {
		if err := addFile(tw, f); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return out.Close()
}

func addFile(tw *tar.Writer, f File) error {
	in, err := os.Open(f.Path) // #nosec G304 - bundle members are files huegen just wrote
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", f.Path, err)
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build tar header for %s: %w", f.Path, err)
	}
	hdr.Name = filepath.ToSlash(f.Name)

	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write tar header for %s: %w", f.Name, err)
	}
	if _, err := io.Copy(tw, in); err != nil {
		return fmt.Errorf("failed to archive %s: %w", f.Name, err)
	}
	return nil
}
