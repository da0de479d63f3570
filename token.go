package hubrl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

// Token bodies are tiny; anything past this is not a token response.
const maxTokenBody = 1 << 20

// tokenResponse is the JSON body returned by the token authority.
type tokenResponse struct {
	Token string `json:"token"`
}

// acquireToken exchanges the configured credentials (or nothing, for
// anonymous checks) for a short-lived bearer token scoped to pulling
// the probe repository. The token is consumed once by the probe and
// then discarded; nothing is cached or refreshed.
func (c *Client) acquireToken(ctx context.Context) (string, error) {
	cfg, err := c.auth.Authorization()
	if err != nil {
		return "", authError("resolve credentials", err)
	}
	credentialed := cfg.Username != "" || cfg.Password != ""

	scope := fmt.Sprintf("repository:%s:pull", c.ref.Context().RepositoryStr())

	q := url.Values{}
	q.Set("service", c.service)
	q.Set("scope", scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tokenURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", connectionErrorWrap("build token request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if credentialed {
		req.SetBasicAuth(cfg.Username, cfg.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", connectionErrorWrap(fmt.Sprintf("failed to connect to %s", c.service), err)
	}
	defer resp.Body.Close()

	// A rejected credentialed request means bad credentials, which is a
	// different user-facing cause than a network or server problem.
	switch {
	case resp.StatusCode == http.StatusOK:
	case credentialed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden):
		return "", authError(fmt.Sprintf("authentication failed for %s: %s", cfg.Username, resp.Status), nil)
	default:
		return "", connectionError("error connecting to %s: %s", c.service, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBody))
	if err != nil {
		return "", connectionErrorWrap("read token response", err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", parsingError("decode token response", err)
	}
	if tr.Token == "" {
		return "", parsingError("token response has no token field", nil)
	}

	log.Debugf("acquired token for scope %s", scope)
	return tr.Token, nil
}
