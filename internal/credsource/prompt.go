package credsource

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// PromptSecret interactively asks for an account's password or token
// without echoing it. Used by the single-account input surface.
func PromptSecret(ctx context.Context, username, kind string) (string, error) {
	var secret string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s for %s", kind, username)).
				EchoMode(huh.EchoModePassword).
				Value(&secret),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("prompt aborted: %w", err)
	}
	if secret == "" {
		return "", fmt.Errorf("empty %s for %s", kind, username)
	}
	return secret, nil
}
