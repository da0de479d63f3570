package hubrl

import (
	"net/http"
	"time"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
)

// Docker Hub defaults. The ratelimitpreview/test image exists solely so
// clients can trigger rate-limit accounting and read the headers.
const (
	DefaultTokenURL = "https://auth.docker.io/token"
	DefaultService  = "registry.docker.io"
	DefaultImage    = "registry-1.docker.io/ratelimitpreview/test:latest"
)

const defaultHTTPTimeout = 30 * time.Second

// Options configure a Client.
type Options struct {
	HTTPClient *http.Client
	Auth       authn.Authenticator
	Image      string
	ImageOpts  []name.Option
	TokenURL   string
	Service    string
	UserAgent  string
}

// Option is a functional option for configuring New.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		HTTPClient: &http.Client{Timeout: defaultHTTPTimeout},
		Image:      DefaultImage,
		TokenURL:   DefaultTokenURL,
		Service:    DefaultService,
		UserAgent:  defaultUserAgent,
	}
}

// WithHTTPClient installs a custom http.Client for both requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		if hc != nil {
			o.HTTPClient = hc
		}
	}
}

// WithAuth sets the authenticator used for the token request. Defaults
// to anonymous.
func WithAuth(auth authn.Authenticator) Option {
	return func(o *Options) { o.Auth = auth }
}

// WithBasicAuth is a shortcut for WithAuth with username/password
// credentials.
func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.Auth = &authn.Basic{Username: username, Password: password}
	}
}

// WithImage sets the probe resource as a standard Docker ref
// (e.g. "registry-1.docker.io/ratelimitpreview/test:latest"). Extra
// name options (such as name.Insecure) are passed through to the
// reference parser.
func WithImage(ref string, opts ...name.Option) Option {
	return func(o *Options) {
		o.Image = ref
		o.ImageOpts = opts
	}
}

// WithTokenURL overrides the token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(o *Options) { o.TokenURL = tokenURL }
}

// WithService overrides the service name sent to the token endpoint.
func WithService(service string) Option {
	return func(o *Options) { o.Service = service }
}

// WithUserAgent sets a custom User-Agent string.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		if ua != "" {
			o.UserAgent = ua
		}
	}
}
