package k8s

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// kubeconfigYAML returns a minimal kubeconfig whose contexts appear in the
// given order.
func kubeconfigYAML(contexts ...string) string {
	doc := "apiVersion: v1\nkind: Config\nclusters:\n- name: test-cluster\n  cluster:\n    server: https://10.0.0.1:6443\nusers:\n- name: test-user\n  user:\n    token: test-token\ncontexts:"
	if len(contexts) == 0 {
		return doc + " []\n"
	}
	doc += "\n"
	for _, name := range contexts {
		doc += fmt.Sprintf("- name: %s\n  context:\n    cluster: test-cluster\n    user: test-user\n", name)
	}
	return doc
}

// writeFile writes content to dir/name and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
