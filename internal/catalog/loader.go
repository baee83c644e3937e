package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Block headers look like "--- medium/nature".
var headerRe = regexp.MustCompile(`^-{3,}[ \t]*([A-Za-z]+)[ \t]*/[ \t]*([A-Za-z0-9_ -]+?)[ \t]*$`)

// LoadCatalog loads word lists from a list of paths (files or directories)
// and merges them into one catalog. The result is validated before it is
// returned.
func LoadCatalog(paths []string) (Catalog, error) {
	cat := Catalog{}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range files {
				if entry.IsDir() {
					continue
				}
				if err := loadFile(filepath.Join(path, entry.Name()), cat); err != nil {
					return nil, err
				}
			}
		} else {
			if err := loadFile(path, cat); err != nil {
				return nil, err
			}
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

func loadFile(path string, cat Catalog) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var (
		diff     Difficulty
		category string
		lineNo   int
	)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := headerRe.FindStringSubmatch(line); m != nil {
			d, err := ParseDifficulty(m[1])
			if err != nil {
				return fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			diff, category = d, strings.ToLower(m[2])
			if cat[diff] == nil {
				cat[diff] = map[string][]string{}
			}
			continue
		}

		if category == "" {
			return fmt.Errorf("%s:%d: word %q outside of a category block", path, lineNo, line)
		}
		cat[diff][category] = append(cat[diff][category], strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	return nil
}
