// Package cmd provides the command-line interface for kube-switcher.
//
// kube-switcher is a single Cobra command. It scans a directory of kubeconfig
// files, labels each file by the name of its first context, and copies the
// chosen file over the active kubeconfig:
//
//	kube-switcher              # Prompt for a context from a numbered list
//	kube-switcher <context>    # Activate <context> directly
//	kube-switcher --version    # Show version information
//
// The context directory defaults to ~/.kube/configs and can be overridden
// with KSWITCHER_CONFIGS_DIR. The active kubeconfig is always ~/.kube/config.
//
// Debug logging of every scanned file is enabled with --debug or
// KSWITCHER_DEBUG=true and is written to stderr.
package cmd
