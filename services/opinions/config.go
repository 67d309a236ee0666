package opinions

import (
	"time"

	"debateservice/lib/scrapers/debateorg"
)

type Config struct {
	AllowedDomain       string `json:"allowed_domain"`
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds"`
	MaxRedirects        int    `json:"max_redirects"`
	UserAgent           string `json:"user_agent"`
	// BypassCloudflare defaults to true when unset.
	BypassCloudflare *bool `json:"bypass_cloudflare"`
}

func (c Config) ClientOptions() debateorg.ClientOptions {
	bypass := true
	if c.BypassCloudflare != nil {
		bypass = *c.BypassCloudflare
	}
	return debateorg.ClientOptions{
		Timeout:          time.Duration(c.FetchTimeoutSeconds) * time.Second,
		UserAgent:        c.UserAgent,
		MaxRedirects:     c.MaxRedirects,
		AllowedDomain:    c.Domain(),
		BypassCloudflare: bypass,
	}
}

func (c Config) Domain() string {
	if c.AllowedDomain == "" {
		return debateorg.Domain
	}
	return c.AllowedDomain
}

// NewServiceFromConfig wires the debate.org client and extractor into a Service.
func NewServiceFromConfig(c Config) Service {
	return NewService(
		debateorg.NewClient(c.ClientOptions()),
		ExtractorFunc(debateorg.Extract),
		Options{AllowedDomain: c.Domain()},
	)
}
