package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindDataFile locates fileName under the given roots. Fast paths first
// (root/fileName, root/data/fileName), then a recursive walk of each root,
// so the file is found wherever a user dropped it. The first hit wins.
func FindDataFile(fileName string, roots ...string) (string, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	var candidates []string
	for _, root := range roots {
		candidates = append(candidates,
			filepath.Join(root, fileName),
			filepath.Join(root, "data", fileName),
		)
	}
	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil && !st.IsDir() {
			return c, nil
		}
	}
	for _, root := range roots {
		var found string
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // unreadable subtree, keep searching
			}
			if !d.IsDir() && d.Name() == fileName {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if walkErr == nil && found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("%s not found (looked at %s and under %s)",
		fileName, strings.Join(candidates, ", "), strings.Join(roots, ", "))
}
