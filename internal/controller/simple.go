package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "apiprep.dev/pkg/apiprep/internal/model"
)

const platformName = "Vercel"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// SimpleUI implements UI by writing plain lines to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBanner announces the start of a build.
func (s *SimpleUI) DisplayBanner(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Building API for %s...\n", platformName)
}

// DisplayRemoving announces removal of a stale destination.
func (s *SimpleUI) DisplayRemoving(ctx context.Context, mapping m.Mapping) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Removing existing %s directory...\n", mapping.Name)
}

// DisplayCopying announces the start of a copy.
func (s *SimpleUI) DisplayCopying(ctx context.Context, mapping m.Mapping) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Copying %s from %s...\n", mapping.Label, mapping.Source)
}

// DisplaySourceMissing warns about a source path that does not exist.
func (s *SimpleUI) DisplaySourceMissing(ctx context.Context, source m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", warningStyle.Render(fmt.Sprintf("⚠️  Source not found: %s", source)))
}

// DisplaySharedCheck reports the result of the shared package existence check.
func (s *SimpleUI) DisplaySharedCheck(ctx context.Context, mapping m.Mapping, found bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Checking for shared source at: %s\n", mapping.Source)

	if found {
		s.printf("%s\n", successStyle.Render(fmt.Sprintf(
			"✅ Shared package found at %s (already in correct location for %s)", mapping.Source, platformName)))

		return
	}

	s.printf("%s\n", warningStyle.Render(fmt.Sprintf("⚠️  Shared source directory not found at %s", mapping.Source)))
	s.printf("   This may cause import errors in %s deployment.\n", platformName)
}

// DisplayBuildReport prints the completion line and a per-mapping summary.
func (s *SimpleUI) DisplayBuildReport(ctx context.Context, report m.BuildReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", successStyle.Render("✅ API functions and dependencies copied to root"))
	s.printf("\n%s", renderBuildTable(report))
}

func renderBuildTable(report m.BuildReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mapping", "Status", "Files", "Rewritten"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, step := range report.Steps {
		table.Append([]string{
			step.Mapping.Name,
			step.Status.String(),
			fmt.Sprintf("%d", step.Stats.Files),
			fmt.Sprintf("%d", step.Stats.Rewritten),
		})
	}

	totals := report.Totals()
	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d mappings", len(report.Steps)),
		fmt.Sprintf("%d", totals.Files),
		fmt.Sprintf("%d", totals.Rewritten),
	})

	table.Render()

	return tableBuffer.String()
}

type planDocument struct {
	Root     string        `yaml:"root"`
	Mappings []m.PlanEntry `yaml:"mappings"`
}

// DisplayPlan prints the resolved mapping table.
func (s *SimpleUI) DisplayPlan(ctx context.Context, root m.Path, entries []m.PlanEntry, format PlanFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case PlanFormatYAML:
		out, err := yaml.Marshal(planDocument{Root: string(root), Mappings: entries})
		if err != nil {
			return fmt.Errorf("marshal plan: %w", err)
		}

		s.printf("%s", out)
	case PlanFormatTable, "":
		s.printf("Project root: %s\n\n%s", root, renderPlanTable(entries))
	default:
		return fmt.Errorf("unsupported plan format %q", format)
	}

	return nil
}

func renderPlanTable(entries []m.PlanEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Kind", "Source", "Destination", "Source Exists"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, entry := range entries {
		table.Append([]string{
			entry.Name,
			string(entry.Kind),
			string(entry.Source),
			string(entry.Destination),
			fmt.Sprintf("%t", entry.SourceExists),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayDiffs prints pending import rewrites found by a dry run.
func (s *SimpleUI) DisplayDiffs(ctx context.Context, diffs []m.FileDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, diff := range diffs {
		s.printf("%s", diff.Unified)
	}

	s.printf("%d file(s) would have imports rewritten\n", len(diffs))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
