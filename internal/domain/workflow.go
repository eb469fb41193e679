// Package domain holds the deployment-preparation logic: the mapping table,
// import rewriting and the recursive materialization of source trees.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"apiprep.dev/pkg/apiprep/internal/adapter"
	"apiprep.dev/pkg/apiprep/internal/controller"
	m "apiprep.dev/pkg/apiprep/internal/model"
)

// BuildArgs contains the arguments for a build run.
type BuildArgs struct {
	Root m.Path
}

// PlanArgs contains the arguments for printing the mapping plan.
type PlanArgs struct {
	Root   m.Path
	Format controller.PlanFormat
}

// DiffArgs contains the arguments for a dry run.
type DiffArgs struct {
	Root m.Path
}

// Workflow defines the commands the CLI exposes.
type Workflow interface {
	Build(ctx context.Context, args BuildArgs) error
	Plan(ctx context.Context, args PlanArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	Materializer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	materializer Materializer,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		Materializer:    materializer,
	}
}

// Build clears the copy destinations, materializes every mapping in order and
// verifies the shared package. It stops at the first I/O error; whatever was
// already written stays on disk.
func (w *workflow) Build(ctx context.Context, args BuildArgs) error {
	mappings := DefaultMappings(args.Root)

	slog.Info("Starting build", "root", args.Root)
	w.DisplayBanner(ctx)

	if err := w.ClearDestinations(ctx, mappings); err != nil {
		return fmt.Errorf("clear destinations: %w", err)
	}

	report := m.BuildReport{Steps: make([]m.StepResult, 0, len(mappings))}

	for _, mapping := range mappings {
		step, err := w.buildStep(ctx, mapping)
		if err != nil {
			slog.Error("Build step failed", "mapping", mapping.Name, "error", err)
			return fmt.Errorf("%s: %w", mapping.Name, err)
		}

		report.Steps = append(report.Steps, step)
	}

	w.DisplayBuildReport(ctx, report)

	totals := report.Totals()
	slog.Info("Build finished", "files", totals.Files, "rewritten", totals.Rewritten)

	return nil
}

func (w *workflow) buildStep(ctx context.Context, mapping m.Mapping) (m.StepResult, error) {
	step := m.StepResult{Mapping: mapping}

	if err := ctx.Err(); err != nil {
		return step, err
	}

	if !mapping.IsCopy() {
		found, err := w.VerifySharedPackage(ctx, mapping)
		if err != nil {
			return step, err
		}

		step.Status = m.Verified
		if !found {
			step.Status = m.Missing
		}

		return step, nil
	}

	if mapping.Optional {
		exists, err := w.Exists(mapping.Source)
		if err != nil {
			return step, pathError("stat", mapping.Source, err)
		}

		if !exists {
			slog.Debug("Skipping optional mapping", "mapping", mapping.Name, "source", mapping.Source)

			step.Status = m.Skipped

			return step, nil
		}
	}

	w.DisplayCopying(ctx, mapping)

	stats, err := w.Materialize(ctx, mapping.Source, mapping.Destination)
	if err != nil {
		return step, err
	}

	step.Stats = stats
	step.Status = m.Copied

	if stats.Missing {
		step.Status = m.Missing
	}

	return step, nil
}

// Plan prints the mapping table without touching the filesystem. Paths are
// shown relative to the project root.
func (w *workflow) Plan(ctx context.Context, args PlanArgs) error {
	mappings := DefaultMappings(args.Root)
	entries := make([]m.PlanEntry, 0, len(mappings))

	for _, mapping := range mappings {
		exists, err := w.Exists(mapping.Source)
		if err != nil {
			return pathError("stat", mapping.Source, err)
		}

		if mapping.Source, err = w.RelPath(args.Root, mapping.Source); err != nil {
			return fmt.Errorf("relativize %s: %w", mapping.Name, err)
		}

		if mapping.Destination, err = w.RelPath(args.Root, mapping.Destination); err != nil {
			return fmt.Errorf("relativize %s: %w", mapping.Name, err)
		}

		entries = append(entries, m.PlanEntry{Mapping: mapping, SourceExists: exists})
	}

	return w.DisplayPlan(ctx, args.Root, entries, args.Format)
}

// Diff previews the import rewrites a build would make, without writing.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	var diffs []m.FileDiff

	for _, mapping := range CopyMappings(DefaultMappings(args.Root)) {
		if mapping.Optional {
			exists, err := w.Exists(mapping.Source)
			if err != nil {
				return pathError("stat", mapping.Source, err)
			}

			if !exists {
				continue
			}
		}

		mappingDiffs, err := w.Preview(ctx, mapping.Source, mapping.Destination)
		if err != nil {
			return fmt.Errorf("%s: %w", mapping.Name, err)
		}

		diffs = append(diffs, mappingDiffs...)
	}

	slog.Debug("Previewed import rewrites", "root", args.Root, "files", len(diffs))

	return w.DisplayDiffs(ctx, diffs)
}
