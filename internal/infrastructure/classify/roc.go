package classify

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// ROCAUC computes the area under the ROC curve for predicted positive-class
// probabilities against binary labels.
func ROCAUC(scores []float64, labels []int) (float64, error) {
	if len(scores) != len(labels) {
		return 0, fmt.Errorf("score count %d does not match label count %d", len(scores), len(labels))
	}
	if len(scores) == 0 {
		return 0, fmt.Errorf("no scores provided")
	}

	y := make([]float64, len(scores))
	classes := make([]bool, len(labels))
	positives := 0
	for i := range scores {
		y[i] = scores[i]
		classes[i] = labels[i] == 1
		if classes[i] {
			positives++
		}
	}
	if positives == 0 || positives == len(labels) {
		return 0, fmt.Errorf("ROC AUC requires both positive and negative labels")
	}

	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	return integrate.Trapezoidal(fpr, tpr), nil
}
