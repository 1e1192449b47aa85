// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with databases, managing
// dataset, embedding-run and evaluation-result metadata. The package
// includes validation and logging for traceability and error handling.
package persistence
