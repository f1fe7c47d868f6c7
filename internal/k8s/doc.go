// Package k8s scans a directory of kubeconfig files and activates one of them.
//
// Each regular file in the context directory is decoded into the kubeconfig v1
// schema. The name of its first context becomes the file's label:
//
//	result, err := k8s.Scan(dir, logger)
//	if err != nil {
//		return err
//	}
//
//	for _, label := range result.Labels() {
//		fmt.Println(label, result.Contexts[label])
//	}
//
// Files that cannot be read or decoded, or that declare no named context, are
// skipped rather than failing the scan. Every file is reported in
// Result.Files with its Outcome so callers can tell the cases apart.
//
// Activate copies the file backing a label over the active kubeconfig path:
//
//	if err := k8s.Activate(result, "prod", "/home/me/.kube/config"); err != nil {
//		return err
//	}
//
// The active kubeconfig is overwritten, never merged. No locking is performed;
// concurrent invocations race and the last writer wins.
package k8s
