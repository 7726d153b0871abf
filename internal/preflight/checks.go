package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"pgadvise/internal/config"
)

// CheckConfReadable verifies the probe's configuration file can be read.
// An absent file passes: the check command treats it as "nothing to advise
// about", so absence is not a fault.
func CheckConfReadable(probe config.Probe) Result {
	name := fmt.Sprintf("Probe %s", probe.Setting)

	info, err := os.Stat(probe.ConfFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (absent, check will no-op)", probe.ConfFile)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", probe.ConfFile, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", probe.ConfFile)}
	}
	if err := unix.Access(probe.ConfFile, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", probe.ConfFile, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", probe.ConfFile)}
}

// CheckJournalDir verifies the journal directory exists and is writable.
func CheckJournalDir(dir string) Result {
	const name = "Journal directory"

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", dir)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dir, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", dir)}
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", dir)}
}
