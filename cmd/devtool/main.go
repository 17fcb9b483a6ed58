package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&ImportKatasCommand{})
	registry.Register(&IssueTokenCommand{})
	registry.Register(&WaitForDBCommand{})
	registry.Register(&CheckEnvCommand{})
	registry.Register(&DoctorCommand{})
	return registry
}

func main() {
	// Same .env the server reads
	_ = godotenv.Load()

	err := newRegistry().Dispatch(os.Stdout, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, ErrUsage):
		os.Exit(2)
	default:
		PrintError("%v", err)
		os.Exit(1)
	}
}
