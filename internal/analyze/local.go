// Package analyze implements the auto-fill helpers: scanning a local project
// directory or a GitHub repository to suggest metadata for generation.
package analyze

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const maxTreeDepth = 3

// LocalResult is what a directory scan can pre-fill.
type LocalResult struct {
	Name            string   `json:"name"`
	Languages       []string `json:"languages"`
	Dependencies    []string `json:"dependencies"`
	DirectoryTree   string   `json:"directory_tree"`
	SuggestedBadges []string `json:"suggested_badges"`
}

var extLanguages = map[string]string{
	".py":   "Python",
	".go":   "Go",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".java": "Java",
	".rb":   "Ruby",
	".rs":   "Rust",
	".c":    "C",
	".cpp":  "C++",
	".cs":   "C#",
	".sh":   "Shell",
}

var languageBadges = map[string]string{
	"Python": "python",
	"Go":     "go",
}

// Local scans path and derives name, languages, dependency list, a fenced
// directory tree, and suggested badge identifiers.
func Local(path string) (*LocalResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	res := &LocalResult{Name: filepath.Base(filepath.Clean(path))}

	langSet := map[string]struct{}{}
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != path {
				return filepath.SkipDir
			}
			return nil
		}
		if lang, ok := extLanguages[strings.ToLower(filepath.Ext(p))]; ok {
			langSet[lang] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}

	for lang := range langSet {
		res.Languages = append(res.Languages, lang)
	}
	sort.Strings(res.Languages)

	res.Dependencies = readDependencies(path)
	res.DirectoryTree = directoryTree(path)

	seen := map[string]struct{}{}
	for _, lang := range res.Languages {
		if id, ok := languageBadges[lang]; ok {
			if _, dup := seen[id]; !dup {
				res.SuggestedBadges = append(res.SuggestedBadges, id)
				seen[id] = struct{}{}
			}
		}
	}
	if _, err := os.Stat(filepath.Join(path, ".github", "workflows")); err == nil {
		res.SuggestedBadges = append(res.SuggestedBadges, "github-actions")
	}

	return res, nil
}

// readDependencies pulls a dependency list out of requirements.txt or go.mod,
// whichever exists.
func readDependencies(path string) []string {
	if deps := readRequirements(filepath.Join(path, "requirements.txt")); deps != nil {
		return deps
	}
	return readGoModRequires(filepath.Join(path, "go.mod"))
}

func readRequirements(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var deps []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		deps = append(deps, line)
	}
	return deps
}

func readGoModRequires(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var deps []string
	inBlock := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "require (":
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock || strings.HasPrefix(line, "require "):
			line = strings.TrimPrefix(line, "require ")
			fields := strings.Fields(line)
			if len(fields) >= 2 && strings.Contains(fields[0], "/") {
				deps = append(deps, fields[0])
			}
		}
	}
	return deps
}

// directoryTree renders the layout as a fenced Markdown block, depth-bounded.
func directoryTree(root string) string {
	var b strings.Builder
	b.WriteString("```\n")

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		depth := 0
		if rel != "." {
			depth = strings.Count(rel, string(os.PathSeparator)) + 1
		}
		if depth > maxTreeDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && rel != "." {
			return filepath.SkipDir
		}

		indent := strings.Repeat("    ", depth)
		name := d.Name()
		if rel == "." {
			name = filepath.Base(filepath.Clean(root))
		}
		if d.IsDir() {
			name += "/"
		}
		b.WriteString(indent + name + "\n")
		return nil
	})

	b.WriteString("```\n")
	return b.String()
}
