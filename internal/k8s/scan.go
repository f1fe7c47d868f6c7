package k8s

import (
	"fmt"
	"os"
	"path/filepath"

	clientcmdv1 "k8s.io/client-go/tools/clientcmd/api/v1"
	"sigs.k8s.io/yaml"

	"github.com/giantswarm/kube-switcher/internal/logging"
)

// contextList is the part of a kubeconfig document that determines its label.
// Other fields are not decoded, so unrelated type errors cannot skip a file.
type contextList struct {
	Contexts []clientcmdv1.NamedContext `json:"contexts"`
}

// clusterList is decoded separately and only for logging.
type clusterList struct {
	Clusters []clientcmdv1.NamedCluster `json:"clusters"`
}

// FileResult records how a single file in the context directory was handled.
type FileResult struct {
	Path    string
	Label   string // empty when Outcome.Skipped()
	Outcome Outcome
	Err     error // set for OutcomeUnreadable and OutcomeMalformed
}

// Duplicate records a label declared by more than one file. Winner is the
// file the label maps to after the scan.
type Duplicate struct {
	Label    string
	Replaced string
	Winner   string
}

// Result is the outcome of scanning a context directory.
type Result struct {
	// Dir is the scanned directory.
	Dir string

	// Contexts maps each label to the path of the file that declares it.
	Contexts map[string]string

	// Files lists every regular file visited, in scan order.
	Files []FileResult

	// Duplicates lists label collisions, in scan order.
	Duplicates []Duplicate

	labels []string
}

// Labels returns the labels in order of first appearance. Files are scanned
// in lexical order, so the result is stable across runs.
func (r *Result) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Lookup returns the file backing label.
func (r *Result) Lookup(label string) (string, error) {
	path, ok := r.Contexts[label]
	if !ok {
		return "", &ContextNotFoundError{Label: label, Dir: r.Dir}
	}
	return path, nil
}

// Empty reports whether the scan produced no labels.
func (r *Result) Empty() bool {
	return len(r.Contexts) == 0
}

func (r *Result) add(label, path string) Outcome {
	if existing, ok := r.Contexts[label]; ok {
		r.Duplicates = append(r.Duplicates, Duplicate{Label: label, Replaced: existing, Winner: path})
		r.Contexts[label] = path
		return OutcomeDuplicate
	}
	r.Contexts[label] = path
	r.labels = append(r.labels, label)
	return OutcomeLoaded
}

// Scan reads every regular file in dir (non-recursive) and maps the name of
// each file's first context to its path. When two files declare the same
// label the lexically later file wins and the collision is recorded in
// Result.Duplicates. logger may be nil.
//
// Only a failure to list dir is returned as an error. Per-file failures are
// reported in Result.Files.
func Scan(dir string, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read context directory %s: %w", dir, err)
	}

	result := &Result{
		Dir:      dir,
		Contexts: make(map[string]string),
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(entry, path) {
			continue
		}

		fr := scanFile(path, logger)
		if !fr.Outcome.Skipped() {
			fr.Outcome = result.add(fr.Label, path)
		}
		result.Files = append(result.Files, fr)

		switch fr.Outcome {
		case OutcomeDuplicate:
			logger.Warn("duplicate context label, later file wins",
				logging.Context(fr.Label),
				logging.Path(path))
		case OutcomeLoaded:
			logger.Debug("kubeconfig loaded",
				logging.Context(fr.Label),
				logging.Path(path))
		default:
			logger.Debug("kubeconfig skipped",
				logging.Path(path),
				logging.Outcome(string(fr.Outcome)),
				logging.Err(fr.Err))
		}
	}

	return result, nil
}

// isRegularFile reports whether entry is a regular file, following symlinks.
func isRegularFile(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// scanFile decodes one file and extracts its label.
func scanFile(path string, logger logging.Logger) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Outcome: OutcomeUnreadable, Err: err}
	}

	var kubeconfig contextList
	if err := yaml.Unmarshal(data, &kubeconfig); err != nil {
		return FileResult{Path: path, Outcome: OutcomeMalformed, Err: err}
	}

	if len(kubeconfig.Contexts) == 0 || kubeconfig.Contexts[0].Name == "" {
		return FileResult{Path: path, Outcome: OutcomeNoContexts}
	}

	first := kubeconfig.Contexts[0]
	if server := clusterServer(data, first.Context.Cluster); server != "" {
		logger.Debug("kubeconfig cluster",
			logging.Context(first.Name),
			logging.Host(server))
	}

	return FileResult{Path: path, Label: first.Name, Outcome: OutcomeLoaded}
}

// clusterServer returns the API server URL of the named cluster, if present.
// A clusters list that does not decode yields "".
func clusterServer(data []byte, name string) string {
	var clusters clusterList
	if err := yaml.Unmarshal(data, &clusters); err != nil {
		return ""
	}
	for _, c := range clusters.Clusters {
		if c.Name == name {
			return c.Cluster.Server
		}
	}
	return ""
}
