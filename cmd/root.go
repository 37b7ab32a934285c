package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nilaykumar/must/internal/app"
	"github.com/nilaykumar/must/internal/config"
)

// Version is the must release version.
const Version = "0.1"

var cfgFile string

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// NewRootCmd creates the root command for must CLI.
func NewRootCmd() *cobra.Command {
	var addTask string

	rootCmd := &cobra.Command{
		Use:   "must",
		Short: "A simple CLI todo application",
		Long: `must keeps a todo list in ~/must/todo.txt.

Every run prints the current list and writes it back. Use --add to append
a task first.`,
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("add") && addTask == "" {
				return fmt.Errorf("--add requires a non-empty task")
			}
			return runRoot(cmd, addTask)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/must/must.yaml)")
	rootCmd.Flags().StringVarP(&addTask, "add", "a", "", "adds a task to the current task list")

	return rootCmd
}

func runRoot(cmd *cobra.Command, addTask string) error {
	cfg, err := config.LoadConfigWithFile(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := app.Options{Add: addTask}

	return app.Run(cfg, opts, cmd.OutOrStdout())
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
