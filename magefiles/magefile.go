//go:build mage

// Package main contains Mage build targets for cinematch developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	"data",
	"catalog",
	"output",
}

const (
	binDir  = "bin"
	binName = "cinematch"
	cmdPkg  = "./cmd/cinematch"

	sampleCSV   = "data/imdb_top_1000.csv"
	sampleTitle = "Inception"
)

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + gitVersion()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Import loads the sample dataset into the catalog.
func Import() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "import", "--csv", sampleCSV)
}

// Rank ranks the sample dataset against a title (RANK_TITLE, default Inception).
func Rank() error {
	mg.Deps(Build)
	title := os.Getenv("RANK_TITLE")
	if title == "" {
		title = sampleTitle
	}
	return sh.RunV(filepath.Join(binDir, binName), "rank", title, "--csv", sampleCSV, "--limit", "20")
}

// gitVersion returns `git describe` output, or "dev" outside a repository.
func gitVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(v) == "" {
		return "dev"
	}
	return strings.TrimSpace(v)
}
