package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/rodaine/table"

	"github.com/jwebster45206/adventure-engine/pkg/worldfile"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world-file>...\n", os.Args[0])
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], os.Stdout))
}

// report is the outcome of checking one world file.
type report struct {
	path      string
	title     string
	locations int
	errs      []string
	warnings  []string
}

func (r report) status() string {
	switch {
	case len(r.errs) > 0:
		return "invalid"
	case len(r.warnings) > 0:
		return "warnings"
	default:
		return "ok"
	}
}

// run validates every path, prints a summary table followed by details,
// and returns the process exit code.
func run(paths []string, w io.Writer) int {
	reports := make([]report, 0, len(paths))
	for _, p := range paths {
		reports = append(reports, validateFile(p))
	}

	t := table.New("File", "Title", "Locations", "Status", "Warnings").WithWriter(w)
	for _, r := range reports {
		t.AddRow(filepath.Base(r.path), r.title, r.locations, r.status(), len(r.warnings))
	}
	t.Print()

	code := 0
	for _, r := range reports {
		if len(r.errs) == 0 && len(r.warnings) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", r.path)
		for _, e := range r.errs {
			fmt.Fprintln(w, indent("error: "+e))
		}
		for _, warning := range r.warnings {
			fmt.Fprintln(w, indent("warning: "+warning))
		}
		if len(r.errs) > 0 {
			code = 1
		}
	}
	return code
}

func validateFile(path string) report {
	r := report{path: path}

	baseName := filepath.Base(path)
	ext := filepath.Ext(baseName)
	if !worldfile.IsWorldFile(baseName) {
		r.errs = append(r.errs, fmt.Sprintf("world file must have a .json, .yaml or .yml extension: %s", baseName))
		return r
	}
	if !isValidWorldFilename(strings.TrimSuffix(baseName, ext)) {
		r.errs = append(r.errs, fmt.Sprintf("world filename '%s' must be lowercase snake_case (e.g., my_world.json, not my-world.json or MyWorld.json)", baseName))
	}

	spec, err := worldfile.ReadFile(path, true)
	if err != nil {
		r.errs = append(r.errs, err.Error())
		return r
	}
	r.title = spec.Title
	r.locations = len(spec.Locations)

	wld, err := spec.Build()
	if err != nil {
		r.errs = append(r.errs, err.Error())
		return r
	}
	r.warnings = wld.Audit()
	return r
}

func indent(s string) string {
	wrapped := wordwrap.String(s, 76)
	return "  " + strings.ReplaceAll(wrapped, "\n", "\n    ")
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidWorldFilename(name string) bool {
	// Allow 'x.' prefix for experimental worlds
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
