package ead

import (
	"context"
	"log/slog"
)

// Diagnostic codes.
const (
	DiagSubseriesWithoutID = "subseries-without-id"
	DiagFilegroupWithoutID = "filegroup-without-id"
	DiagSkippedComponent   = "skipped-component"
	DiagDuplicateInventory = "duplicate-inventory-number"
	DiagSeriesWithoutDid   = "series-without-did"
)

// Diagnostic is a recoverable anomaly found while walking a document.
type Diagnostic struct {
	Level   slog.Level
	Code    string
	Message string
	Tag     string
	Path    string
}

// Diagnostics is an ordered list of anomalies for one run.
type Diagnostics []Diagnostic

// Count returns the number of diagnostics with the given code.
func (d Diagnostics) Count(code string) int {
	n := 0
	for _, diag := range d {
		if diag.Code == code {
			n++
		}
	}
	return n
}

// Log writes every diagnostic to logger at its own level.
func (d Diagnostics) Log(logger *slog.Logger) {
	for _, diag := range d {
		logger.Log(context.Background(), diag.Level, diag.Message,
			"code", diag.Code,
			"tag", diag.Tag,
			"path", diag.Path,
		)
	}
}
