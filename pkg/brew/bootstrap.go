// bootstrap.go
package brew

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Bootstrap installs Homebrew itself: it downloads the upstream source
// tarball and unpacks it into <dir>/homebrew, then verifies the unpacked
// brew binary responds. The download is gzip-compressed upstream; xz
// tarballs are accepted too, sniffed by magic bytes.
func (pm *PackageManager) Bootstrap(ctx context.Context, dir string) error {
	target := filepath.Join(dir, "homebrew")
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}

	pm.logger.Printf("Downloading Homebrew tarball from %s", pm.config.TarballURL)
	body, err := pm.client.Get(ctx, pm.config.TarballURL)
	if err != nil {
		return fmt.Errorf("downloading tarball: %w", err)
	}
	defer body.Close()

	if err := extractTarball(body, target); err != nil {
		return fmt.Errorf("extracting tarball: %w", err)
	}
	pm.logger.Printf("Unpacked Homebrew into %s", target)

	probe := newExecRunner(filepath.Join(target, "bin", "brew"), NoAutoUpdateEnv)
	if _, err := probe.Run(ctx, "--version"); err != nil {
		return fmt.Errorf("verifying bootstrapped brew: %w", err)
	}

	return nil
}

// gzip and xz stream magic bytes
var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// extractTarball unpacks a compressed tar stream into target, stripping the
// leading path component the way "tar --strip 1" does. GitHub tarballs wrap
// everything in a single <org>-<repo>-<sha>/ directory.
func extractTarball(r io.Reader, target string) error {
	br := bufio.NewReader(r)

	magic, err := br.Peek(len(xzMagic))
	if err != nil {
		return fmt.Errorf("reading archive header: %w", err)
	}

	var decompressed io.Reader
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gzr.Close()
		decompressed = gzr
	case bytes.HasPrefix(magic, xzMagic):
		xzr, err := xz.NewReader(br)
		if err != nil {
			return fmt.Errorf("creating xz reader: %w", err)
		}
		decompressed = xzr
	default:
		return fmt.Errorf("unrecognized archive format (magic %x)", magic)
	}

	tr := tar.NewReader(decompressed)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		name := stripComponent(header.Name)
		if name == "" {
			continue
		}
		targetPath := filepath.Join(target, filepath.FromSlash(name))

		// Refuse entries escaping the target directory
		if !strings.HasPrefix(targetPath, filepath.Clean(target)+string(os.PathSeparator)) {
			return fmt.Errorf("tar entry escapes target directory: %s", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}

		case tar.TypeSymlink:
			// The link target must stay inside the tree as well
			linkTarget := header.Linkname
			if !filepath.IsAbs(linkTarget) {
				linkTarget = filepath.Join(filepath.Dir(targetPath), linkTarget)
			}
			if !strings.HasPrefix(filepath.Clean(linkTarget), filepath.Clean(target)+string(os.PathSeparator)) {
				return fmt.Errorf("symlink target escapes target directory: %s -> %s", header.Name, header.Linkname)
			}
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory for symlink: %w", err)
			}
			if err := os.Symlink(header.Linkname, targetPath); err != nil {
				if !os.IsExist(err) {
					return fmt.Errorf("creating symlink %s -> %s: %w", targetPath, header.Linkname, err)
				}
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}

			outFile, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return fmt.Errorf("creating file %s: %w", targetPath, err)
			}

			written, err := io.Copy(outFile, tr)
			outFile.Close()
			if err != nil {
				return fmt.Errorf("writing file %s: %w", targetPath, err)
			}
			if written != header.Size {
				return fmt.Errorf("file size mismatch for %s: expected %d, got %d", targetPath, header.Size, written)
			}

		default:
			// Hard links and device nodes do not occur in the brew tarball
			continue
		}
	}

	return nil
}

// stripComponent drops the first path component of a slash-separated tar
// entry name. Entries with nothing left (the root directory itself) map to "".
func stripComponent(name string) string {
	name = strings.TrimPrefix(name, "./")
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return strings.TrimSuffix(name[i+1:], "/")
	}
	return ""
}
