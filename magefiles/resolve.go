//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Resolve builds the CLI and runs it against cas.csv in the working directory.
func Resolve() error {
	mg.Deps(Build)
	return run(filepath.Join(binDir, binName))
}

// Probe builds the CLI and checks that PubChem is reachable.
func Probe() error {
	mg.Deps(Build)
	return run(filepath.Join(binDir, binName), "probe")
}

func run(bin string, args ...string) error {
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
