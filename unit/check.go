package unit

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/javawriter"
)

// CheckResult reports which rendered units differ from the files on disk.
type CheckResult struct {
	Checked int
	// Differences maps a unit's FileName to a unified diff from the file
	// on disk to the rendered source.
	Differences map[string]string
	// Missing lists FileNames with no file on disk.
	Missing []string
}

// UpToDate reports whether every checked file matched.
func (r *CheckResult) UpToDate() bool {
	return len(r.Differences) == 0 && len(r.Missing) == 0
}

// Files returns the names of differing files, sorted.
func (r *CheckResult) Files() []string {
	files := make([]string, 0, len(r.Differences))
	for f := range r.Differences {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Compare renders each unit in memory and compares it with dir/FileName().
// With ignoreHeader set, leading // comment lines and the blank lines after
// them are ignored on both sides.
func Compare(units []*Unit, dir string, ignoreHeader bool, opts ...javawriter.Option) (*CheckResult, error) {
	result := &CheckResult{Differences: make(map[string]string)}

	for _, u := range units {
		want, err := RenderBytes(u, opts...)
		if err != nil {
			return nil, err
		}
		name := u.FileName()
		result.Checked++

		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		if os.IsNotExist(err) {
			result.Missing = append(result.Missing, name)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}

		gotText, wantText := string(got), string(want)
		if ignoreHeader {
			gotText, wantText = stripHeader(gotText), stripHeader(wantText)
		}
		if gotText == wantText {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(gotText),
			B:        difflib.SplitLines(wantText),
			FromFile: "a/" + name,
			ToFile:   "b/" + name,
			Context:  3,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to diff %s", name)
		}
		result.Differences[name] = diff
	}

	sort.Strings(result.Missing)
	return result, nil
}

func stripHeader(text string) string {
	rest := text
	for strings.HasPrefix(rest, "//") {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			return ""
		}
		rest = rest[i+1:]
	}
	if rest == text {
		return text
	}
	return strings.TrimLeft(rest, "\n")
}
