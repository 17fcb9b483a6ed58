package main

import (
	"github.com/osse101/Codinho_Go/internal/config"
)

type CheckEnvCommand struct{}

func (c *CheckEnvCommand) Name() string {
	return "check-env"
}

func (c *CheckEnvCommand) Description() string {
	return "Validate environment variables against the expected schema"
}

func (c *CheckEnvCommand) Run(args []string) error {
	PrintHeader("Checking environment...")

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		PrintWarning("%s", w)
	}
	if err != nil {
		return err
	}

	PrintSuccess("Environment OK")
	return nil
}
