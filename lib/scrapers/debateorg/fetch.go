package debateorg

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"debateservice/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	Domain = "debate.org"

	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	DefaultTimeout      = time.Second * 10
	DefaultMaxRedirects = 10
)

type ClientOptions struct {
	// Timeout bounds the whole request including redirects and reading the body.
	Timeout   time.Duration
	UserAgent string
	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int
	// AllowedDomain restricts redirect targets to this domain and its
	// subdomains, empty allows any host.
	AllowedDomain    string
	BypassCloudflare bool
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.MaxRedirects <= 0 {
		o.MaxRedirects = DefaultMaxRedirects
	}
	return o
}

// Client retrieves opinion pages, it is safe for concurrent use.
type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	opts = opts.withDefaults()

	client := resty.New()
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRedirectPolicy(redirectPolicy(opts.MaxRedirects, opts.AllowedDomain))
	client.SetTimeout(opts.Timeout)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{http: client}
}

// Fetch performs a single GET of link and returns the body of a 2xx response.
//
// A 404 fails with ErrNotFound, every other status or transport failure
// fails with ErrUpstream.
func (c *Client) Fetch(ctx context.Context, link string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, link)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, res.StatusCode())
	}
	return res.Body(), nil
}

func redirectPolicy(maxRedirects int, allowedDomain string) resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		if !IsHttpScheme(req.URL) {
			return fmt.Errorf("redirect to unsupported scheme %q", req.URL.Scheme)
		}
		if allowedDomain != "" && !InDomain(req.URL.Hostname(), allowedDomain) {
			return fmt.Errorf("redirect to %q leaves %s", req.URL.Hostname(), allowedDomain)
		}
		return nil
	})
}

func IsHttpScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// InDomain reports whether host is domain itself or one of its subdomains,
// ignoring case and a trailing dot.
func InDomain(host, domain string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	domain = strings.TrimSuffix(strings.ToLower(domain), ".")
	if host == "" || domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}
