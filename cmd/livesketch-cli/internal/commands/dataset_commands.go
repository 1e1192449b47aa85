package commands

import (
	"context"
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/datasets"
	"github.com/georgSquared/livesketch/internal/pkg/config"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DatasetCommandHandler encapsulates logic for handling dataset operations via CLI.
type DatasetCommandHandler struct {
	services *cliServices
	logger   logger.Logger
}

// NewDatasetCommandHandler initializes and returns a DatasetCommandHandler instance with
// configured logger and application services.
func NewDatasetCommandHandler() (*DatasetCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &DatasetCommandHandler{
		services: services,
		logger:   loggerInstance,
	}, nil
}

// FetchDatasetCmd downloads a ratings archive, builds its interaction graph and
// stores the dataset metadata
func (commandHandler *DatasetCommandHandler) FetchDatasetCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	sourceURL, err := cmd.Flags().GetString("source-url")
	if err != nil {
		commandHandler.logger.Error("invalid source-url flag ", err)
		return
	}
	minScore, err := cmd.Flags().GetFloat64("min-score")
	if err != nil {
		commandHandler.logger.Error("invalid min-score flag ", err)
		return
	}

	meta, err := commandHandler.services.dataset.Fetch(context.Background(), name, sourceURL, minScore)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Fetched dataset ", meta.Name,
		" with id ", meta.ID,
		", users ", meta.LeftCount,
		", items ", meta.RightCount,
		", edges ", meta.EdgeCount)
}

// ListDatasetsCmd prints stored dataset metadata
func (commandHandler *DatasetCommandHandler) ListDatasetsCmd(cmd *cobra.Command, _ []string) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	metas, err := commandHandler.services.dataset.List(context.Background(), &datasets.DatasetQuery{Limit: limit})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, meta := range metas {
		commandHandler.logger.Info("dataset ", meta.ID,
			" name=", meta.Name,
			" users=", meta.LeftCount,
			" items=", meta.RightCount,
			" edges=", meta.EdgeCount)
	}
	commandHandler.logger.Info("Listed ", len(metas), " datasets")
}

// DeleteDatasetCmd deletes dataset metadata by ID
func (commandHandler *DatasetCommandHandler) DeleteDatasetCmd(cmd *cobra.Command, _ []string) {
	datasetID, err := cmd.Flags().GetString("dataset-id")
	if err != nil {
		commandHandler.logger.Error("invalid dataset-id flag ", err)
		return
	}

	if err := commandHandler.services.dataset.DeleteByID(context.Background(), datasetID); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Deleted dataset with id ", datasetID)
}

// InitDatasetCommands registers dataset-related commands
func InitDatasetCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatasetCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create dataset command handler %w", err)
	}

	var fetchDatasetCmd = &cobra.Command{
		Use:   "fetch-dataset",
		Short: "Download a ratings archive and build its interaction graph",
		Run:   handler.FetchDatasetCmd,
	}
	fetchDatasetCmd.Flags().StringP("name", "", "ml-latest-small", "Name to store the dataset under")
	fetchDatasetCmd.Flags().StringP("source-url", "", config.MovieLensSmallURL, "URL of the ratings archive")
	fetchDatasetCmd.Flags().Float64P("min-score", "", config.DefaultMinScore, "Minimum rating for an interaction to become an edge")
	rootCmd.AddCommand(fetchDatasetCmd)

	var listDatasetsCmd = &cobra.Command{
		Use:   "list-datasets",
		Short: "List stored dataset metadata",
		Run:   handler.ListDatasetsCmd,
	}
	listDatasetsCmd.Flags().IntP("limit", "", 0, "Maximum number of datasets to list (0 for all)")
	rootCmd.AddCommand(listDatasetsCmd)

	var deleteDatasetCmd = &cobra.Command{
		Use:   "delete-dataset",
		Short: "Delete dataset metadata by ID",
		Run:   handler.DeleteDatasetCmd,
	}
	deleteDatasetCmd.Flags().StringP("dataset-id", "", "", "ID of the dataset to delete")
	rootCmd.AddCommand(deleteDatasetCmd)

	return nil
}
