package hubrl

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const manifestAccept = "application/vnd.docker.distribution.manifest.v2+json"

// probe performs the single authenticated manifest request and reads
// the quota counters from the response headers. The manifest content
// itself is irrelevant; the request exists only to trigger rate-limit
// accounting.
func (c *Client) probe(ctx context.Context, token string) (Limit, error) {
	repo := c.ref.Context()
	u := fmt.Sprintf("%s://%s/v2/%s/manifests/%s",
		repo.Scheme(), repo.RegistryStr(), repo.RepositoryStr(), c.ref.Identifier())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Limit{}, connectionErrorWrap("build probe request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", manifestAccept)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Limit{}, connectionErrorWrap(fmt.Sprintf("failed to connect to %s", repo.RegistryStr()), err)
	}
	defer resp.Body.Close()

	log.Debugf("probe %s returned %s", u, resp.Status)

	// 429 wins over whatever the headers say.
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return Limit{}, overLimitError()
	default:
		return Limit{}, connectionError("error connecting to %s: %s", repo.RegistryStr(), resp.Status)
	}

	total, err := parseQuotaHeader(resp.Header, headerLimit)
	if err != nil {
		return Limit{}, err
	}
	remaining, err := parseQuotaHeader(resp.Header, headerRemaining)
	if err != nil {
		return Limit{}, err
	}

	return Limit{Remaining: remaining, Total: total}, nil
}
