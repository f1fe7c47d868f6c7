package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the kube-switcher command. It takes at most one
// positional argument, the context label to activate.
var rootCmd = &cobra.Command{
	Use:   "kube-switcher [context]",
	Short: "Switch between multiple kubeconfig files",
	Long: `kube-switcher lists the kubeconfig files in a directory and copies the
chosen one over the active kubeconfig.

Each file is labelled by the name of its first context. Without arguments a
numbered list is shown and the context is chosen interactively. With one
argument that context is activated directly.

The directory defaults to ~/.kube/configs and can be overridden with
KSWITCHER_CONFIGS_DIR. The active kubeconfig is ~/.kube/config.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeContexts,
	RunE:              runSwitch,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

func init() {
	// SetVersionTemplate defines the output of the --version flag.
	rootCmd.SetVersionTemplate(`{{printf "kube-switcher version %s\n" .Version}}`)

	rootCmd.PersistentFlags().Bool("debug", false, "Log the outcome of every scanned kubeconfig file to stderr")
}
