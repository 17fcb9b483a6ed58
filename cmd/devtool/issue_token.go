package main

import (
	"fmt"
	"time"

	"github.com/osse101/Codinho_Go/internal/auth"
)

const defaultTokenTTL = 24 * time.Hour

type IssueTokenCommand struct{}

func (c *IssueTokenCommand) Name() string {
	return "issue-token"
}

func (c *IssueTokenCommand) Description() string {
	return "Sign an HS256 token for a user (issue-token <user> [ttl])"
}

func (c *IssueTokenCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("user id required")
	}

	ttl := defaultTokenTTL
	if len(args) > 1 {
		parsed, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("invalid ttl %q: %w", args[1], err)
		}
		ttl = parsed
	}

	verifier, err := auth.NewHS256Verifier(getEnv("JWT_SECRET", ""), getEnv("JWT_ISSUER", ""), getEnv("JWT_AUDIENCE", ""))
	if err != nil {
		return err
	}
	token, err := verifier.Issue(args[0], ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
