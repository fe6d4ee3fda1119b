package packet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/flashpack/internal/card"
)

var ErrTraversalCycle = errors.New("packet: directory visited twice")

// WalkFunc is called for every card file found by Walk.
type WalkFunc func(path string) error

// Walk visits the tree rooted at root depth-first with an explicit stack.
// Each popped directory is listed once: child directories are pushed, files
// whose extension equals ext are passed to fn right away. The directory
// pushed last is expanded first.
//
// Symbolic links are followed. Reaching a directory that was already
// expanded fails with ErrTraversalCycle.
func Walk(root, ext string, fn WalkFunc) error {
	visited := make(map[string]bool)
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", dir, err)
		}
		if visited[resolved] {
			return fmt.Errorf("%w: %s", ErrTraversalCycle, dir)
		}
		visited[resolved] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("error reading directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			childPath := filepath.Join(dir, entry.Name())
			info, err := os.Stat(childPath)
			if err != nil {
				return fmt.Errorf("error resolving entry %s: %w", childPath, err)
			}

			if info.IsDir() {
				stack = append(stack, childPath)
				continue
			}
			if _, childExt := card.SplitExt(entry.Name()); childExt != ext {
				continue
			}
			if err := fn(childPath); err != nil {
				return err
			}
		}
	}

	return nil
}
