package hubrl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
)

// Version of the library, used in the default User-Agent.
const Version = "0.1.0"

const defaultUserAgent = "hubrl/" + Version

// Client checks the remaining pull quota of a registry.
type Client struct {
	http      *http.Client
	auth      authn.Authenticator
	ref       name.Reference
	tokenURL  string
	service   string
	userAgent string
}

// New creates a quota checker for the given options. With no options it
// checks Docker Hub anonymously against the ratelimitpreview/test
// image.
func New(opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	parseOpts := append([]name.Option{name.WithDefaultTag("latest")}, options.ImageOpts...)
	ref, err := name.ParseReference(options.Image, parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid image ref %q: %w", options.Image, err)
	}

	auth := options.Auth
	if auth == nil {
		auth = authn.Anonymous
	}

	return &Client{
		http:      options.HTTPClient,
		auth:      auth,
		ref:       ref,
		tokenURL:  options.TokenURL,
		service:   options.Service,
		userAgent: options.UserAgent,
	}, nil
}

// Check acquires a bearer token and probes the registry once, returning
// the quota it reports. The two requests run strictly in sequence; a
// failure at either stage is terminal and typed (see Kind).
//
// The probe consumes one unit of quota, so Remaining is one less than
// it was immediately before the call.
func (c *Client) Check(ctx context.Context) (Limit, error) {
	token, err := c.acquireToken(ctx)
	if err != nil {
		return Limit{}, err
	}
	return c.probe(ctx, token)
}
