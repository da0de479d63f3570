// Package creds resolves registry credentials from explicit values, an
// interactive prompt, and the local Docker keychain.
package creds

import (
	"fmt"
	"os"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// PasswordPrompt asks the user for a password interactively.
type PasswordPrompt func(prompt string) (string, error)

// Source describes where credentials may come from.
type Source struct {
	Username    string
	Password    string
	UseKeychain bool
	// Prompt is used when Username is set but Password is not.
	// Defaults to TTYPrompt.
	Prompt PasswordPrompt
}

// TTYPrompt reads a password from the terminal without echo. The prompt
// goes to stderr so stdout stays clean for the quota output.
func TTYPrompt(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// Resolve turns a Source into an authenticator for the given registry.
// Precedence: explicit username+password, then username with an
// interactive prompt, then the Docker keychain, then anonymous.
func Resolve(src Source, registry string) (authn.Authenticator, error) {
	if src.Username != "" {
		pass := src.Password
		if pass == "" {
			prompt := src.Prompt
			if prompt == nil {
				prompt = TTYPrompt
			}
			p, err := prompt(fmt.Sprintf("Password for %s: ", src.Username))
			if err != nil {
				return nil, err
			}
			pass = p
		}
		return &authn.Basic{Username: src.Username, Password: pass}, nil
	}

	if src.UseKeychain {
		reg, err := name.NewRegistry(registry)
		if err != nil {
			return nil, fmt.Errorf("invalid registry %q: %w", registry, err)
		}
		auth, err := authn.DefaultKeychain.Resolve(reg)
		if err != nil {
			log.Debugf("keychain lookup for %s failed: %v", registry, err)
			return authn.Anonymous, nil
		}
		if auth != authn.Anonymous {
			log.Debugf("using keychain credentials for %s", registry)
		}
		return auth, nil
	}

	return authn.Anonymous, nil
}
