package domain

import (
	"path/filepath"

	m "apiprep.dev/pkg/apiprep/internal/model"
)

// Relative layout of the monorepo and of the deployment tree.
const (
	apiAppDir       = "apps/api"
	sharedSourceDir = "packages/shared/src"
)

// DefaultMappings returns the fixed mapping table resolved against root, in the
// order the build processes it. Each call returns a fresh slice.
//
// The shared package is verified in place: its source and destination coincide
// in the monorepo layout, so it is never copied.
func DefaultMappings(root m.Path) []m.Mapping {
	r := string(root)

	copyMapping := func(name, label string, optional bool) m.Mapping {
		return m.Mapping{
			Name:        name,
			Label:       label,
			Source:      m.Path(filepath.Join(r, filepath.FromSlash(apiAppDir), name)),
			Destination: m.Path(filepath.Join(r, name)),
			Kind:        m.KindCopy,
			Optional:    optional,
		}
	}

	shared := m.Path(filepath.Join(r, filepath.FromSlash(sharedSourceDir)))

	return []m.Mapping{
		copyMapping("api", "API functions", false),
		copyMapping("lib", "lib", true),
		copyMapping("services", "services", true),
		copyMapping("utils", "utils", true),
		{
			Name:        "shared",
			Label:       "shared package",
			Source:      shared,
			Destination: shared,
			Kind:        m.KindVerify,
		},
	}
}

// CopyMappings filters mappings down to the destructive copies.
func CopyMappings(mappings []m.Mapping) []m.Mapping {
	copies := make([]m.Mapping, 0, len(mappings))
	for _, mapping := range mappings {
		if mapping.IsCopy() {
			copies = append(copies, mapping)
		}
	}

	return copies
}
