package commands

import (
	"context"
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/embeddings"
	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// EvalCommandHandler encapsulates logic for handling evaluations via CLI.
type EvalCommandHandler struct {
	services *cliServices
	logger   logger.Logger
}

// NewEvalCommandHandler initializes and returns an EvalCommandHandler instance with
// configured logger and application services.
func NewEvalCommandHandler() (*EvalCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &EvalCommandHandler{
		services: services,
		logger:   loggerInstance,
	}, nil
}

// EvaluateAUCCmd runs a link-prediction ROC AUC evaluation on a stored dataset
func (commandHandler *EvalCommandHandler) EvaluateAUCCmd(cmd *cobra.Command, _ []string) {
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
	operatorName, err := cmd.Flags().GetString("operator")
	if err != nil {
		commandHandler.logger.Error("invalid operator flag ", err)
		return
	}
	testFraction, err := cmd.Flags().GetFloat64("test-fraction")
	if err != nil {
		commandHandler.logger.Error("invalid test-fraction flag ", err)
		return
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag ", err)
		return
	}

	operator, err := embeddings.ParseEdgeOperator(operatorName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.services.evaluation.EvaluateAUC(context.Background(), evaluation.AUCParams{
		DatasetID:    datasetID,
		Model:        model,
		Dimensions:   dimensions,
		Operator:     operator,
		TestFraction: testFraction,
		Seed:         seed,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("ROC AUC for ", result.Model,
		" with operator ", result.Operator,
		": ", result.Value,
		" (", result.ElapsedMs, " ms)")
}

// EvaluatePrecisionCmd runs a precision@k evaluation on a stored dataset
func (commandHandler *EvalCommandHandler) EvaluatePrecisionCmd(cmd *cobra.Command, _ []string) {
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
	similarityName, err := cmd.Flags().GetString("similarity")
	if err != nil {
		commandHandler.logger.Error("invalid similarity flag ", err)
		return
	}
	k, err := cmd.Flags().GetInt("k")
	if err != nil {
		commandHandler.logger.Error("invalid k flag ", err)
		return
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag ", err)
		return
	}

	similarity, err := embeddings.ParseSimilarityMeasure(similarityName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.services.evaluation.EvaluatePrecisionAtK(context.Background(), evaluation.PrecisionParams{
		DatasetID:  datasetID,
		Model:      model,
		Dimensions: dimensions,
		Similarity: similarity,
		K:          k,
		Seed:       seed,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("precision@", result.K,
		" for ", result.Model,
		" with similarity ", result.Similarity,
		": ", result.Value,
		" (", result.ElapsedMs, " ms)")
}

// ListResultsCmd prints stored evaluation results
func (commandHandler *EvalCommandHandler) ListResultsCmd(cmd *cobra.Command, _ []string) {
	datasetID, err := cmd.Flags().GetString("dataset-id")
	if err != nil {
		commandHandler.logger.Error("invalid dataset-id flag ", err)
		return
	}
	metric, err := cmd.Flags().GetString("metric")
	if err != nil {
		commandHandler.logger.Error("invalid metric flag ", err)
		return
	}

	results, err := commandHandler.services.evaluation.List(context.Background(), &evaluation.ResultQuery{
		DatasetID: datasetID,
		Metric:    metric,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, result := range results {
		commandHandler.logger.Info("result ", result.ID,
			" dataset=", result.DatasetID,
			" model=", result.Model,
			" metric=", result.Metric,
			" value=", result.Value)
	}
	commandHandler.logger.Info("Listed ", len(results), " evaluation results")
}

// InitEvalCommands registers evaluation-related commands
func InitEvalCommands(rootCmd *cobra.Command) error {
	handler, err := NewEvalCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create eval command handler %w", err)
	}

	var evaluateAUCCmd = &cobra.Command{
		Use:   "evaluate-auc",
		Short: "Evaluate link-prediction ROC AUC for an embedding model",
		Run:   handler.EvaluateAUCCmd,
	}
	evaluateAUCCmd.Flags().StringP("dataset-id", "", "", "ID of the dataset to evaluate on")
	evaluateAUCCmd.Flags().StringP("model", "", embeddings.ModelLiveSketch, "Embedding model (livesketch or random_projection)")
	evaluateAUCCmd.Flags().IntP("dimensions", "", 128, "Dimensionality of the node embeddings")
	evaluateAUCCmd.Flags().StringP("operator", "", string(embeddings.OperatorHadamard), "Edge operator (concat, hadamard or average)")
	evaluateAUCCmd.Flags().Float64P("test-fraction", "", 0.2, "Fraction of edges held out for testing")
	evaluateAUCCmd.Flags().Int64P("seed", "", 42, "Seed for the edge split and model")
	rootCmd.AddCommand(evaluateAUCCmd)

	var evaluatePrecisionCmd = &cobra.Command{
		Use:   "evaluate-precision",
		Short: "Evaluate precision@k over ranked node pairs",
		Run:   handler.EvaluatePrecisionCmd,
	}
	evaluatePrecisionCmd.Flags().StringP("dataset-id", "", "", "ID of the dataset to evaluate on")
	evaluatePrecisionCmd.Flags().StringP("model", "", embeddings.ModelLiveSketch, "Embedding model (livesketch or random_projection)")
	evaluatePrecisionCmd.Flags().IntP("dimensions", "", 128, "Dimensionality of the node embeddings")
	evaluatePrecisionCmd.Flags().StringP("similarity", "", string(embeddings.SimilarityHamming), "Similarity measure (cosine, hamming or dot_product)")
	evaluatePrecisionCmd.Flags().IntP("k", "", 100, "Number of top-ranked pairs to check")
	evaluatePrecisionCmd.Flags().Int64P("seed", "", 42, "Seed for the model")
	rootCmd.AddCommand(evaluatePrecisionCmd)

	var listResultsCmd = &cobra.Command{
		Use:   "list-results",
		Short: "List stored evaluation results",
		Run:   handler.ListResultsCmd,
	}
	listResultsCmd.Flags().StringP("dataset-id", "", "", "Only list results for this dataset")
	listResultsCmd.Flags().StringP("metric", "", "", "Only list results for this metric")
	rootCmd.AddCommand(listResultsCmd)

	return nil
}
