// Package classify implements the binary classifier and ranking metrics used
// by link-prediction evaluation.
package classify
