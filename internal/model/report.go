package model

// StepStatus is the outcome of processing a single mapping.
type StepStatus int

const (
	// Copied indicates the source tree was materialized at the destination.
	Copied StepStatus = iota
	// Skipped indicates an optional source was absent and nothing was done.
	Skipped
	// Missing indicates a source that should have been there was not found.
	Missing
	// Verified indicates a checked-only mapping whose source exists.
	Verified
)

func (s StepStatus) String() string {
	switch s {
	case Copied:
		return "copied"
	case Skipped:
		return "skipped"
	case Missing:
		return "missing"
	case Verified:
		return "verified"
	default:
		return "unknown"
	}
}

// MaterializeStats counts what a materialization produced.
type MaterializeStats struct {
	Missing     bool // source did not exist, nothing was created
	Directories int
	Files       int
	Rewritten   int // files whose content changed during import rewriting
}

// Add accumulates other into s.
func (s *MaterializeStats) Add(other MaterializeStats) {
	s.Directories += other.Directories
	s.Files += other.Files
	s.Rewritten += other.Rewritten
}

// StepResult records what happened to one mapping during a build.
type StepResult struct {
	Mapping Mapping
	Status  StepStatus
	Stats   MaterializeStats
}

// BuildReport is the ordered list of step results for a build run.
type BuildReport struct {
	Steps []StepResult
}

// Totals sums the stats of every step.
func (r BuildReport) Totals() MaterializeStats {
	var total MaterializeStats
	for _, step := range r.Steps {
		total.Add(step.Stats)
	}

	return total
}

// FileDiff is a pending import rewrite found during a dry run.
type FileDiff struct {
	Source      Path
	Destination Path
	Unified     string
}
