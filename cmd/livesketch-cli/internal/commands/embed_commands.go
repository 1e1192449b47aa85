package commands

import (
	"context"
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// EmbedCommandHandler encapsulates logic for handling embedding runs via CLI.
type EmbedCommandHandler struct {
	services *cliServices
	logger   logger.Logger
}

// NewEmbedCommandHandler initializes and returns an EmbedCommandHandler instance with
// configured logger and application services.
func NewEmbedCommandHandler() (*EmbedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &EmbedCommandHandler{
		services: services,
		logger:   loggerInstance,
	}, nil
}

// EmbedCmd fits an embedding model on a stored dataset and writes the index file
func (commandHandler *EmbedCommandHandler) EmbedCmd(cmd *cobra.Command, _ []string) {
	datasetID, err := cmd.Flags().GetString("dataset-id")
	if err != nil {
		commandHandler.logger.Error("invalid dataset-id flag ", err)
		return
	}
	model, err := cmd.Flags().GetString("model")
	if err != nil {
		commandHandler.logger.Error("invalid model flag ", err)
		return
	}
	dimensions, err := cmd.Flags().GetInt("dimensions")
	if err != nil {
		commandHandler.logger.Error("invalid dimensions flag ", err)
		return
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag ", err)
		return
	}

	run, err := commandHandler.services.run.Run(context.Background(), datasetID, model, dimensions, seed)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Embedding run ", run.ID,
		" completed in ", run.BuildDurationMs,
		" ms, index saved to ", run.IndexPath)
}

// ListRunsCmd prints stored embedding run metadata
func (commandHandler *EmbedCommandHandler) ListRunsCmd(cmd *cobra.Command, _ []string) {
	datasetID, err := cmd.Flags().GetString("dataset-id")
	if err != nil {
		commandHandler.logger.Error("invalid dataset-id flag ", err)
		return
	}

	runs, err := commandHandler.services.run.List(context.Background(), &embeddings.RunQuery{DatasetID: datasetID})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, run := range runs {
		commandHandler.logger.Info("run ", run.ID,
			" dataset=", run.DatasetID,
			" model=", run.Model,
			" dimensions=", run.Dimensions,
			" duration_ms=", run.BuildDurationMs)
	}
	commandHandler.logger.Info("Listed ", len(runs), " runs")
}

// DeleteRunCmd deletes an embedding run and its index file by ID
func (commandHandler *EmbedCommandHandler) DeleteRunCmd(cmd *cobra.Command, _ []string) {
	runID, err := cmd.Flags().GetString("run-id")
	if err != nil {
		commandHandler.logger.Error("invalid run-id flag ", err)
		return
	}

	if err := commandHandler.services.run.DeleteByID(context.Background(), runID); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Deleted run with id ", runID)
}

// InitEmbedCommands registers embedding-related commands
func InitEmbedCommands(rootCmd *cobra.Command) error {
	handler, err := NewEmbedCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create embed command handler %w", err)
	}

	var embedCmd = &cobra.Command{
		Use:   "embed",
		Short: "Fit an embedding model on a stored dataset",
		Run:   handler.EmbedCmd,
	}
	embedCmd.Flags().StringP("dataset-id", "", "", "ID of the dataset to embed")
	embedCmd.Flags().StringP("model", "", embeddings.ModelLiveSketch, "Embedding model (livesketch or random_projection)")
	embedCmd.Flags().IntP("dimensions", "", 128, "Dimensionality of the node embeddings")
	embedCmd.Flags().Int64P("seed", "", 42, "Seed for deterministic embeddings")
	rootCmd.AddCommand(embedCmd)

	var listRunsCmd = &cobra.Command{
		Use:   "list-runs",
		Short: "List stored embedding runs",
		Run:   handler.ListRunsCmd,
	}
	listRunsCmd.Flags().StringP("dataset-id", "", "", "Only list runs for this dataset")
	rootCmd.AddCommand(listRunsCmd)

	var deleteRunCmd = &cobra.Command{
		Use:   "delete-run",
		Short: "Delete an embedding run and its index file",
		Run:   handler.DeleteRunCmd,
	}
	deleteRunCmd.Flags().StringP("run-id", "", "", "ID of the run to delete")
	rootCmd.AddCommand(deleteRunCmd)

	return nil
}
