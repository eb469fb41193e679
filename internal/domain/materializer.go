package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"apiprep.dev/pkg/apiprep/internal/adapter"
	"apiprep.dev/pkg/apiprep/internal/controller"
	m "apiprep.dev/pkg/apiprep/internal/model"
)

const diffContextLines = 3

// Materializer produces the deployment layout from the monorepo source layout.
type Materializer interface {
	// ClearDestinations deletes the destination of every copy mapping that
	// exists. Missing destinations are left alone.
	ClearDestinations(ctx context.Context, mappings []m.Mapping) error
	// Materialize recursively copies source to destination, rewriting imports
	// in recognized files. A missing source is reported and skipped.
	Materialize(ctx context.Context, source, destination m.Path) (m.MaterializeStats, error)
	// VerifySharedPackage checks that a verify mapping's source exists.
	VerifySharedPackage(ctx context.Context, mapping m.Mapping) (bool, error)
	// Preview walks source like Materialize without writing anything and
	// returns a unified diff for each file whose imports would be rewritten.
	Preview(ctx context.Context, source, destination m.Path) ([]m.FileDiff, error)
}

type materializer struct {
	fs adapter.SourceFSAdapter
	ui controller.UI
}

// NewMaterializer creates a Materializer backed by the given filesystem adapter.
func NewMaterializer(fs adapter.SourceFSAdapter, ui controller.UI) Materializer {
	return &materializer{fs: fs, ui: ui}
}

func (mt *materializer) ClearDestinations(ctx context.Context, mappings []m.Mapping) error {
	for _, mapping := range CopyMappings(mappings) {
		if err := ctx.Err(); err != nil {
			return err
		}

		exists, err := mt.fs.Exists(mapping.Destination)
		if err != nil {
			return pathError("stat", mapping.Destination, err)
		}

		if !exists {
			continue
		}

		mt.ui.DisplayRemoving(ctx, mapping)
		slog.Debug("Removing destination", "mapping", mapping.Name, "path", mapping.Destination)

		if err := mt.fs.RemoveAll(mapping.Destination); err != nil {
			slog.Error("Failed to remove destination", "path", mapping.Destination, "error", err)
			return pathError("remove", mapping.Destination, err)
		}
	}

	return nil
}

// pathError annotates err with op and path. Errors from the os package already
// name their path and are returned as is.
func pathError(op string, path m.Path, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}

	return fmt.Errorf("%s %s: %w", op, path, err)
}

// visitFunc is called for every node reachable from a walk root, parents first.
type visitFunc func(node m.Node, info os.FileInfo, destination m.Path) error

func (mt *materializer) Materialize(ctx context.Context, source, destination m.Path) (m.MaterializeStats, error) {
	var stats m.MaterializeStats

	found, err := mt.walk(ctx, source, destination, func(node m.Node, info os.FileInfo, dst m.Path) error {
		if node.Kind == m.NodeDirectory {
			stats.Directories++
			return mt.fs.MkdirAll(dst)
		}

		changed, err := mt.copyFile(node.Path, dst, info.Mode().Perm())
		if err != nil {
			return err
		}

		stats.Files++
		if changed {
			stats.Rewritten++
		}

		return nil
	})
	if err != nil {
		return stats, err
	}

	stats.Missing = !found
	slog.Debug("Materialized tree", "source", source, "destination", destination,
		"files", stats.Files, "rewritten", stats.Rewritten, "missing", stats.Missing)

	return stats, nil
}

func (mt *materializer) copyFile(source, destination m.Path, perm os.FileMode) (bool, error) {
	content, err := mt.fs.ReadFile(source)
	if err != nil {
		return false, pathError("read", source, err)
	}

	rewritten, changed := rewriteChanged(content, source)

	if err := mt.fs.WriteFile(destination, rewritten, perm); err != nil {
		return false, pathError("write", destination, err)
	}

	if changed {
		slog.Debug("Rewrote shared imports", "source", source, "destination", destination)
	}

	return changed, nil
}

func (mt *materializer) VerifySharedPackage(ctx context.Context, mapping m.Mapping) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	found, err := mt.fs.Exists(mapping.Source)
	if err != nil {
		return false, pathError("stat", mapping.Source, err)
	}

	mt.ui.DisplaySharedCheck(ctx, mapping, found)

	return found, nil
}

func (mt *materializer) Preview(ctx context.Context, source, destination m.Path) ([]m.FileDiff, error) {
	var diffs []m.FileDiff

	_, err := mt.walk(ctx, source, destination, func(node m.Node, _ os.FileInfo, dst m.Path) error {
		if node.Kind == m.NodeDirectory || !IsRecognized(node.Path) {
			return nil
		}

		content, err := mt.fs.ReadFile(node.Path)
		if err != nil {
			return pathError("read", node.Path, err)
		}

		rewritten, changed := rewriteChanged(content, node.Path)
		if !changed {
			return nil
		}

		unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(content)),
			B:        difflib.SplitLines(string(rewritten)),
			FromFile: string(node.Path),
			ToFile:   string(dst),
			Context:  diffContextLines,
		})
		if err != nil {
			return fmt.Errorf("diff %s: %w", node.Path, err)
		}

		diffs = append(diffs, m.FileDiff{Source: node.Path, Destination: dst, Unified: unified})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return diffs, nil
}

// walk visits source depth-first, mapping each node onto destination. Any
// node that does not exist is reported with a warning and skipped. The
// returned bool is false when source itself was missing.
func (mt *materializer) walk(ctx context.Context, source, destination m.Path, visit visitFunc) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	exists, err := mt.fs.Exists(source)
	if err != nil {
		return false, pathError("stat", source, err)
	}

	if !exists {
		mt.ui.DisplaySourceMissing(ctx, source)
		slog.Debug("Source not found", "path", source)

		return false, nil
	}

	info, err := mt.fs.FileInfo(source)
	if err != nil {
		return false, pathError("stat", source, err)
	}

	if !info.IsDir() {
		return true, visit(m.Node{Path: source, Kind: m.NodeFile}, info, destination)
	}

	if err := visit(m.Node{Path: source, Kind: m.NodeDirectory}, info, destination); err != nil {
		return true, pathError("create", destination, err)
	}

	children, err := mt.fs.ReadDir(source)
	if err != nil {
		return true, pathError("list", source, err)
	}

	for _, child := range children {
		_, err := mt.walk(ctx,
			mt.fs.JoinPath(string(source), child),
			mt.fs.JoinPath(string(destination), child),
			visit,
		)
		if err != nil {
			return true, err
		}
	}

	return true, nil
}
