package validators

import (
	"github.com/go-playground/validator/v10"
)

// DimensionValidation validates the embedding dimensionality based on the model name.
// LiveSketch signatures below 8 components estimate Jaccard similarity too coarsely
// to be useful, and random projections need at least 2 target dimensions.
func DimensionValidation(fl validator.FieldLevel) bool {
	model := fl.Parent().FieldByName("Model").String()
	dimensions := fl.Field().Int()

	switch model {
	case "livesketch":
		return dimensions >= 8 && dimensions <= 1024
	case "random_projection":
		return dimensions >= 2 && dimensions <= 4096
	default:
		return false
	}
}
