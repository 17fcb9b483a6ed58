package main

import "fmt"

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (env + db)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	envCmd := &CheckEnvCommand{}
	if err := envCmd.Run(nil); err != nil {
		PrintError("Environment check failed: %v", err)
		hasError = true
	}

	if getEnv("STORAGE_BACKEND", "postgres") == "memory" {
		PrintInfo("Memory storage, skipping database check")
	} else if err := pingDB(); err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Database OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
