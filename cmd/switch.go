package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giantswarm/kube-switcher/internal/config"
	"github.com/giantswarm/kube-switcher/internal/k8s"
	"github.com/giantswarm/kube-switcher/internal/logging"
	"github.com/giantswarm/kube-switcher/internal/selector"
)

// runSwitch loads the configuration from the environment and runs the
// scan, select and activate sequence.
func runSwitch(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger := logging.New(cmd.ErrOrStderr(), cfg.Debug || debug)

	return switchContext(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

// switchContext scans cfg.ContextDir, resolves the label from args or an
// interactive prompt, and copies the matching kubeconfig to cfg.ActivePath.
func switchContext(cfg *config.Config, args []string, in io.Reader, out io.Writer, logger *slog.Logger) error {
	result, err := scanContexts(cfg, logger)
	if err != nil {
		return err
	}

	label, err := selector.Resolve(args, result.Labels(), in, out)
	if err != nil {
		return err
	}

	activateLog := logging.WithOperation(logger, "kubeconfig.activate")
	if err := k8s.Activate(result, label, cfg.ActivePath); err != nil {
		activateLog.Debug("activation failed",
			logging.Context(label),
			logging.Status(logging.StatusError),
			logging.Err(err))
		return err
	}

	activateLog.Debug("activation complete",
		logging.Context(label),
		logging.Path(cfg.ActivePath),
		logging.Status(logging.StatusSuccess))

	_, _ = fmt.Fprintf(out, "Config file for context '%s' has been copied to '%s'.\n", label, cfg.ActivePath)
	return nil
}

// scanContexts scans the context directory and fails with k8s.ErrNoContexts
// when it yields no labels.
func scanContexts(cfg *config.Config, logger *slog.Logger) (*k8s.Result, error) {
	scanLog := logging.WithOperation(logger, "kubeconfig.scan")

	result, err := k8s.Scan(cfg.ContextDir, logging.NewSlogAdapter(scanLog))
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", k8s.ErrNoContexts, cfg.ContextDir, err)
	}
	if result.Empty() {
		return nil, fmt.Errorf("%w in %s", k8s.ErrNoContexts, cfg.ContextDir)
	}

	scanLog.Debug("scan complete",
		logging.Path(cfg.ContextDir),
		slog.Int("files", len(result.Files)),
		slog.Int("contexts", len(result.Contexts)))

	return result, nil
}

// completeContexts provides shell completion for the context label.
func completeContexts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	result, err := k8s.Scan(cfg.ContextDir, logging.NewSlogAdapter(logging.New(io.Discard, false)))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var labels []string
	for _, label := range result.Labels() {
		if strings.HasPrefix(label, toComplete) {
			labels = append(labels, label)
		}
	}

	return labels, cobra.ShellCompDirectiveNoFileComp
}
