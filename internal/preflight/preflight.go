package preflight

import (
	"fmt"
	"os"

	"pgadvise/internal/config"
	"pgadvise/internal/dtemplates"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, probe := range cfg.Probes {
		results = append(results, CheckConfReadable(probe))
	}
	results = append(results, CheckFrontend())
	results = append(results, CheckJournalDir(cfg.Paths.JournalDir))
	results = append(results, CheckTemplates(cfg.Paths.TemplatesFile, cfg.Probes))
	return results
}

// CheckFrontend reports whether a debconf frontend is attached to this
// process. Not having one is normal outside package installation, so the
// check passes either way; the detail tells the operator which mode the
// next run would use.
func CheckFrontend() Result {
	const name = "Debconf frontend"
	if os.Getenv("DEBIAN_HAS_FRONTEND") != "" {
		return Result{Name: name, Passed: true, Detail: "frontend attached"}
	}
	return Result{Name: name, Passed: true, Detail: "not attached (advisories will be journaled only)"}
}

// CheckTemplates verifies the templates file parses and that every probe's
// question has a stanza in it.
func CheckTemplates(path string, probes []config.Probe) Result {
	const name = "Debconf templates"

	catalog, err := dtemplates.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}

	for _, probe := range probes {
		if _, ok := catalog.Find(probe.Question); !ok {
			return Result{Name: name, Detail: fmt.Sprintf("question %q not defined in %s", probe.Question, path)}
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d templates)", path, catalog.Len())}
}
