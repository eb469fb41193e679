// Package controller provides output adapters for displaying build progress.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "apiprep.dev/pkg/apiprep/internal/model"
)

// PlanFormat selects how the plan command renders the mapping table.
type PlanFormat string

// Available PlanFormat values.
const (
	PlanFormatTable PlanFormat = "table"
	PlanFormatYAML  PlanFormat = "yaml"
)

// ParsePlanFormat validates a user-supplied format name.
func ParsePlanFormat(value string) (PlanFormat, error) {
	switch PlanFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", PlanFormatTable:
		return PlanFormatTable, nil
	case PlanFormatYAML, "yml":
		return PlanFormatYAML, nil
	}

	return "", fmt.Errorf("unknown plan format %q (want %q or %q)", value, PlanFormatTable, PlanFormatYAML)
}

// UI defines the interface for reporting build progress to the user.
// Implementations can use different output methods.
type UI interface {
	DisplayBanner(ctx context.Context)
	DisplayRemoving(ctx context.Context, mapping m.Mapping)
	DisplayCopying(ctx context.Context, mapping m.Mapping)
	DisplaySourceMissing(ctx context.Context, source m.Path)
	DisplaySharedCheck(ctx context.Context, mapping m.Mapping, found bool)
	DisplayBuildReport(ctx context.Context, report m.BuildReport)
	DisplayPlan(ctx context.Context, root m.Path, entries []m.PlanEntry, format PlanFormat) error
	DisplayDiffs(ctx context.Context, diffs []m.FileDiff) error
}
