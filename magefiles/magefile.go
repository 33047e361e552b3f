//go:build mage

// Package main provides build targets for the herbarium project using Mage.
//
// Usage:
//
//	mage build          Compile herbarium binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the property-based checks
//	mage test:property  Run only property-based checks, with more cases
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install herbarium to GOPATH/bin
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
	binaryName = "herbarium"
	binaryDir  = "bin"
	cmdDir     = "./cmd/herbarium"
	modulePath = "github.com/mesh-intelligence/herbarium"

	// propertyPattern selects rapid-driven tests by name.
	propertyPattern = "PropertyBased"
	propertyChecks  = "1000"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the herbarium binary to bin/, stamping the version from
// HERBARIUM_VERSION when set.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if v := os.Getenv("HERBARIUM_VERSION"); v != "" {
		args = append(args, "-ldflags", "-X "+modulePath+"/internal/cli.Version="+v)
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Test groups test targets.
type Test mg.Namespace

// All runs every test.
func (Test) All() error {
	return sh.RunV(binGo, "test", "./...")
}

// Unit runs tests, skipping the property-based checks.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-skip", propertyPattern, "./...")
}

// Property runs only the property-based checks with a larger case count.
func (Test) Property() error {
	return sh.RunV(binGo, "test", "-run", propertyPattern, "./pkg/...", "-args", "-rapid.checks="+propertyChecks)
}
