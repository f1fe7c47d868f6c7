package k8s

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate(t *testing.T) {
	dir := t.TempDir()
	content := kubeconfigYAML("prod")
	writeFile(t, dir, "prod.yaml", content)
	writeFile(t, dir, "dev.yaml", kubeconfigYAML("dev"))

	result, err := Scan(dir, nil)
	require.NoError(t, err)

	active := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(active, []byte(strings.Repeat("stale ", 200)), 0o600))

	require.NoError(t, Activate(result, "prod", active))

	got, err := os.ReadFile(active)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestActivateUnknownLabelLeavesActiveUntouched(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prod.yaml", kubeconfigYAML("prod"))

	result, err := Scan(dir, nil)
	require.NoError(t, err)

	active := filepath.Join(t.TempDir(), "config")
	original := []byte("original active kubeconfig\n")
	require.NoError(t, os.WriteFile(active, original, 0o600))

	err = Activate(result, "staging", active)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContextNotFound)
	assert.Contains(t, err.Error(), `"staging"`)

	got, err := os.ReadFile(active)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestActivateUnknownLabelDoesNotCreateActive(t *testing.T) {
	result := &Result{Contexts: map[string]string{}}
	active := filepath.Join(t.TempDir(), "config")

	require.Error(t, Activate(result, "missing", active))

	_, err := os.Stat(active)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestActivateMissingDestinationDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prod.yaml", kubeconfigYAML("prod"))

	result, err := Scan(dir, nil)
	require.NoError(t, err)

	err = Activate(result, "prod", filepath.Join(t.TempDir(), "missing", "config"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), `failed to activate context "prod"`)
}

func TestActivateSourceRemovedAfterScan(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "prod.yaml", kubeconfigYAML("prod"))

	result, err := Scan(dir, nil)
	require.NoError(t, err)
	require.NoError(t, os.Remove(src))

	err = Activate(result, "prod", filepath.Join(t.TempDir(), "config"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCopyFile(t *testing.T) {
	t.Run("copies bytes and permission bits", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not preserved on windows")
		}

		src := filepath.Join(t.TempDir(), "src")
		require.NoError(t, os.WriteFile(src, []byte("apiVersion: v1\n"), 0o640))
		require.NoError(t, os.Chmod(src, 0o640))

		dst := filepath.Join(t.TempDir(), "dst")
		require.NoError(t, os.WriteFile(dst, []byte("old"), 0o600))

		require.NoError(t, CopyFile(src, dst))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "apiVersion: v1\n", string(got))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("creates destination", func(t *testing.T) {
		src := filepath.Join(t.TempDir(), "src")
		require.NoError(t, os.WriteFile(src, []byte("data"), 0o600))

		dst := filepath.Join(t.TempDir(), "new")
		require.NoError(t, CopyFile(src, dst))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "data", string(got))
	})

	t.Run("source is a directory", func(t *testing.T) {
		err := CopyFile(t.TempDir(), filepath.Join(t.TempDir(), "dst"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}

func TestCopyFileSameFile(t *testing.T) {
	content := kubeconfigYAML("a")

	tests := []struct {
		name string
		dst  func(t *testing.T, src string) string
	}{
		{
			name: "identical path",
			dst:  func(t *testing.T, src string) string { return src },
		},
		{
			name: "unclean path to the same file",
			dst: func(t *testing.T, src string) string {
				return filepath.Join(filepath.Dir(src), ".", filepath.Base(src))
			},
		},
		{
			name: "destination is a symlink to the source",
			dst: func(t *testing.T, src string) string {
				link := filepath.Join(t.TempDir(), "config")
				if err := os.Symlink(src, link); err != nil {
					t.Skipf("symlinks unsupported: %v", err)
				}
				return link
			},
		},
		{
			name: "destination is a hard link to the source",
			dst: func(t *testing.T, src string) string {
				link := filepath.Join(filepath.Dir(src), "hardlink")
				if err := os.Link(src, link); err != nil {
					t.Skipf("hard links unsupported: %v", err)
				}
				return link
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeFile(t, t.TempDir(), "config", content)
			dst := tt.dst(t, src)

			err := CopyFile(src, dst)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSameFile)

			got, err := os.ReadFile(src)
			require.NoError(t, err)
			assert.Equal(t, content, string(got))
		})
	}
}

func TestActivateContextDirContainsActiveKubeconfig(t *testing.T) {
	dir := t.TempDir()
	content := "contexts:\n- name: a\n"
	active := writeFile(t, dir, "config", content)

	result, err := Scan(dir, nil)
	require.NoError(t, err)

	err = Activate(result, "a", active)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSameFile)

	got, err := os.ReadFile(active)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}
