// Package main is the entry point for the livesketch-cli application.
// It initializes the root command and registers the dataset, embedding and
// evaluation sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/georgSquared/livesketch/cmd/livesketch-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "livesketch-cli",
		Short: "Bipartite graph embedding CLI tool",
		Long: `livesketch-cli is a command-line tool for embedding bipartite interaction graphs.
It fetches rating datasets such as MovieLens, fits sketch-based or random-projection
node embeddings, and evaluates them with link-prediction ROC AUC and precision@k.

Metadata is stored in a local SQLite database by default. Set LIVESKETCH_DB_DSN
to point at another database, e.g. a PostgreSQL connection string.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register dataset commands
	if err := commands.InitDatasetCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize dataset commands: %w", err)
	}

	// Register embedding commands
	if err := commands.InitEmbedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize embedding commands: %w", err)
	}

	// Register evaluation commands
	if err := commands.InitEvalCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize evaluation commands: %w", err)
	}

	return nil
}
