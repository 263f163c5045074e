package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CopyOptions controls how CopyDir treats an existing destination.
type CopyOptions struct {
	// Overwrite merges into an existing destination, replacing files that
	// already exist there. When false an existing destination is an error
	// wrapping fs.ErrExist.
	Overwrite bool
}

// Exists reports whether path exists. Symlinks are not followed.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFile copies a file from src to dst with the given file mode.
func CopyFile(src, dst string, mode os.FileMode) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// CopyDir recursively copies the directory src to dst. Symlinks are copied as
// links. Sockets, pipes and devices are skipped; browsers leave singleton
// sockets in their profile directories.
func CopyDir(src, dst string, opts CopyOptions) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot copy %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot copy %s: not a directory", src)
	}

	if _, err := os.Lstat(dst); err == nil {
		if !opts.Overwrite {
			return fmt.Errorf("cannot copy to %s: %w", dst, fs.ErrExist)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot copy to %s: %w", dst, err)
	}

	if within(src, dst) {
		return fmt.Errorf("cannot copy %s into itself (%s)", src, dst)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch mode := info.Mode(); {
		case mode.IsDir():
			if err := clearTarget(target, true); err != nil {
				return err
			}
			if err := os.MkdirAll(target, mode.Perm()|0700); err != nil {
				return err
			}
			return nil
		case mode&fs.ModeSymlink != 0:
			return copySymlink(path, target)
		case mode.IsRegular():
			if err := clearTarget(target, false); err != nil {
				return err
			}
			return CopyFile(path, target, mode.Perm())
		default:
			return nil
		}
	})
}

// RemoveAll removes path and everything below it. A missing path is not an
// error.
func RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("cannot remove %s: %w", path, err)
	}
	return nil
}

// clearTarget unlinks whatever is at target so the copy replaces it instead
// of writing through a symlink or into a read-only file. A real directory is
// kept when dir is set so its other contents merge.
func clearTarget(target string, dir bool) error {
	info, err := os.Lstat(target)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if dir && info.IsDir() {
		return nil
	}
	return os.RemoveAll(target)
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return err
	}
	if Exists(dst) {
		if err := os.RemoveAll(dst); err != nil {
			return err
		}
	}
	return os.Symlink(link, dst)
}

// within reports whether child is parent or lies below it.
func within(parent, child string) bool {
	parentAbs, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	childAbs, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(parentAbs, childAbs)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
