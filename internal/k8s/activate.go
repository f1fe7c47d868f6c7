package k8s

import (
	"fmt"
	"io"
	"os"
)

// Activate copies the kubeconfig backing label over activePath. The label is
// resolved before anything is written, so an unknown label leaves activePath
// untouched.
func Activate(result *Result, label, activePath string) error {
	src, err := result.Lookup(label)
	if err != nil {
		return err
	}

	if err := CopyFile(src, activePath); err != nil {
		return fmt.Errorf("failed to activate context %q: %w", label, err)
	}

	return nil
}

// CopyFile copies the contents of src to dst, then applies the permission
// bits of src to dst. An existing dst is truncated and overwritten. If src and
// dst are the same file, ErrSameFile is returned and nothing is written.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open kubeconfig %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	srcInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat kubeconfig %s: %w", src, err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("kubeconfig %s is a directory", src)
	}
	mode := srcInfo.Mode().Perm()

	// Truncating dst would empty src when both resolve to the same file.
	if dstInfo, statErr := os.Stat(dst); statErr == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%w: %s and %s", ErrSameFile, src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to open active kubeconfig %s: %w", dst, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close active kubeconfig %s: %w", dst, closeErr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	// OpenFile only applies mode on creation and is subject to umask.
	if err := out.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", dst, err)
	}

	return nil
}
