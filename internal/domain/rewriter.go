package domain

import (
	"bytes"
	"path/filepath"
	"regexp"

	m "apiprep.dev/pkg/apiprep/internal/model"
)

// ImportRewriteRule is a single global substitution applied to script files.
type ImportRewriteRule struct {
	Pattern     *regexp.Regexp
	Replacement []byte
}

// sharedImportRules move shared-package imports from the depth of apps/api/<dir>
// to the depth of the flattened layout. They are unconditional: a file at any
// other depth ends up with a wrong relative path.
var sharedImportRules = []ImportRewriteRule{
	{
		Pattern:     regexp.MustCompile(`from (['"])\.\./\.\./\.\./packages/shared/src/`),
		Replacement: []byte("from ${1}../../packages/shared/src/"),
	},
	{
		Pattern:     regexp.MustCompile(`from (['"])\.\./\.\./\.\./\.\./packages/shared/src/`),
		Replacement: []byte("from ${1}../../packages/shared/src/"),
	},
}

var recognizedExtensions = map[string]struct{}{
	".ts":  {},
	".tsx": {},
	".js":  {},
	".jsx": {},
}

// IsRecognized reports whether path names a script file eligible for import
// rewriting.
func IsRecognized(path m.Path) bool {
	_, ok := recognizedExtensions[filepath.Ext(string(path))]
	return ok
}

// RewriteImports applies the shared import rules to content when path has a
// recognized extension. Any other content is returned as is.
func RewriteImports(content []byte, path m.Path) []byte {
	if !IsRecognized(path) {
		return content
	}

	rewritten := content
	for _, rule := range sharedImportRules {
		rewritten = rule.Pattern.ReplaceAll(rewritten, rule.Replacement)
	}

	return rewritten
}

// rewriteChanged runs RewriteImports and reports whether the content changed.
func rewriteChanged(content []byte, path m.Path) ([]byte, bool) {
	rewritten := RewriteImports(content, path)
	return rewritten, !bytes.Equal(content, rewritten)
}
