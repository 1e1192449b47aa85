// Package evaluation defines the contracts and result entities for scoring
// embedding models: link-prediction ROC AUC and precision-at-k over pairwise
// node similarity.
package evaluation
