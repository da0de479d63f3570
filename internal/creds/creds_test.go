package creds

import (
	"errors"
	"testing"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExplicitCredentials(t *testing.T) {
	auth, err := Resolve(Source{Username: "someuser", Password: "somepass"}, "registry-1.docker.io")
	require.NoError(t, err)

	cfg, err := auth.Authorization()
	require.NoError(t, err)
	assert.Equal(t, "someuser", cfg.Username)
	assert.Equal(t, "somepass", cfg.Password)
}

func TestResolve_PromptsWhenPasswordMissing(t *testing.T) {
	var seen string
	prompt := func(p string) (string, error) {
		seen = p
		return "prompted", nil
	}

	auth, err := Resolve(Source{Username: "someuser", Prompt: prompt}, "registry-1.docker.io")
	require.NoError(t, err)

	assert.Equal(t, "Password for someuser: ", seen)

	cfg, err := auth.Authorization()
	require.NoError(t, err)
	assert.Equal(t, "prompted", cfg.Password)
}

func TestResolve_PromptError(t *testing.T) {
	prompt := func(string) (string, error) {
		return "", errors.New("no tty")
	}

	_, err := Resolve(Source{Username: "someuser", Prompt: prompt}, "registry-1.docker.io")
	require.Error(t, err)
}

func TestResolve_AnonymousByDefault(t *testing.T) {
	auth, err := Resolve(Source{}, "registry-1.docker.io")
	require.NoError(t, err)
	assert.Equal(t, authn.Anonymous, auth)
}

func TestResolve_KeychainEmptyFallsBackToAnonymous(t *testing.T) {
	// Point the keychain at an empty config dir so nothing resolves.
	t.Setenv("DOCKER_CONFIG", t.TempDir())

	auth, err := Resolve(Source{UseKeychain: true}, "registry-1.docker.io")
	require.NoError(t, err)

	cfg, err := auth.Authorization()
	require.NoError(t, err)
	assert.Empty(t, cfg.Username)
	assert.Empty(t, cfg.Password)
}

func TestResolve_KeychainInvalidRegistry(t *testing.T) {
	_, err := Resolve(Source{UseKeychain: true}, "not a registry")
	require.Error(t, err)
}
