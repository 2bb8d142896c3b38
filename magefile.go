//go:build mage

// Build targets for deckgen.
//
//	mage build    Compile deckgen to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage decks    Build every deck into out/ with the fresh binary
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "deckgen"
	binaryDir  = "bin"
	cmdDir     = "./cmd/deckgen"
	decksDir   = "out"
)

// Build compiles the deckgen binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Decks builds all decks and the workbook appendix into out/.
func Decks() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	if err := sh.RunV(bin, "build", "all", "--output-dir", decksDir); err != nil {
		return err
	}
	return sh.RunV(bin, "workbook", "--output-dir", decksDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(decksDir); err != nil {
		return err
	}
	return os.RemoveAll(binaryDir)
}
