package cmd

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubrl/hubrl"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"connection", &hubrl.Error{Kind: hubrl.KindConnection, Message: "down"}, exitConnection},
		{"parsing", &hubrl.Error{Kind: hubrl.KindParsing, Message: "garbled"}, exitParsing},
		{"over limit", &hubrl.Error{Kind: hubrl.KindOverLimit, Message: "over limit"}, exitOverLimit},
		{"auth", &hubrl.Error{Kind: hubrl.KindAuth, Message: "rejected"}, exitAuth},
		{"untyped", errors.New("boom"), exitConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRunCheck_EndToEnd(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"token":"abc"}`)
	}))
	defer auth.Close()

	registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("unexpected authorization: %q", got)
		}
		w.Header().Set("ratelimit-limit", "100;w=21600")
		w.Header().Set("ratelimit-remaining", "97;w=21600")
	}))
	defer registry.Close()

	viper.Reset()
	t.Cleanup(viper.Reset)

	host := strings.TrimPrefix(registry.URL, "http://")
	viper.Set("image", host+"/ratelimitpreview/test:latest")
	viper.Set("token_url", auth.URL)
	viper.Set("timeout", 30*time.Second)
	viper.Set("no_keychain", true)
	viper.Set("insecure", true)

	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	require.NoError(t, runCheck(cmd, nil))
	assert.Equal(t, "97/100\n", buf.String())
}

func TestRunCheck_OverLimitExitCode(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token":"abc"}`)
	}))
	defer auth.Close()

	registry := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer registry.Close()

	viper.Reset()
	t.Cleanup(viper.Reset)

	host := strings.TrimPrefix(registry.URL, "http://")
	viper.Set("image", host+"/ratelimitpreview/test:latest")
	viper.Set("token_url", auth.URL)
	viper.Set("timeout", 30*time.Second)
	viper.Set("no_keychain", true)
	viper.Set("insecure", true)

	err := runCheck(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Equal(t, exitOverLimit, exitCode(err))
}
