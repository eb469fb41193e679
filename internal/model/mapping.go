package model

// MappingKind tells the materializer what to do with a mapping.
type MappingKind string

const (
	// KindCopy clears the destination and copies the source tree into it.
	KindCopy MappingKind = "copy"
	// KindVerify only checks that the source exists.
	KindVerify MappingKind = "verify"
)

// Mapping is a (source, destination) directory pair resolved against the project root.
type Mapping struct {
	Name        string      `yaml:"name"`
	Label       string      `yaml:"label"`
	Source      Path        `yaml:"source"`
	Destination Path        `yaml:"destination"`
	Kind        MappingKind `yaml:"kind"`
	// Optional copy mappings are skipped silently when the source is absent.
	Optional bool `yaml:"optional"`
}

// IsCopy reports whether the mapping is a destructive copy.
func (mp Mapping) IsCopy() bool {
	return mp.Kind == KindCopy
}

// PlanEntry pairs a mapping with the current state of its source.
type PlanEntry struct {
	Mapping      `yaml:",inline"`
	SourceExists bool `yaml:"source_exists"`
}
