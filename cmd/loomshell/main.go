// Package main is the entry point for the loomshell CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/loomos/loomshell/internal/app"
	"github.com/loomos/loomshell/internal/cli"
	"github.com/loomos/loomshell/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		// Allow help and version without a config directory
		if errors.Is(err, domain.ErrNoConfigDir) {
			return runWithoutContainer(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where no config directory can be resolved.
// Only help and version work without one.
func runWithoutContainer(initErr error) error {
	if !canRunWithoutContainer(os.Args[1:]) {
		return initErr
	}
	return cli.NewRootCommand(nil, version).Execute()
}

func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
