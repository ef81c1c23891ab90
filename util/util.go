package util

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Unique[A comparable](items []A) []A {
	seen := make(map[A]bool)
	var res []A
	for _, v := range items {
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	return res
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify makes s safe to use in a filename: "Demo Song" becomes "demo-song".
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func WriteText(path string, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return errors.Wrapf(err, "could not create directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return nil
}
