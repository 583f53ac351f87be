package resolve

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"

	"github.com/imroc/req/v3"
	"github.com/miekg/dns"

	"github.com/dangledns/dangler/internal/apperr"
)

// DefaultDoHURL is the DNS-over-HTTPS endpoint used when none is configured.
const DefaultDoHURL = "https://dns.quad9.net/dns-query"

// DoHClient is a DNS-over-HTTPS resolver session (RFC 8484, GET with the
// base64url-encoded wire query in the "dns" parameter). It produces the same
// Outcome taxonomy as the plaintext Client.
type DoHClient struct {
	client *req.Client
	url    string
	logger *slog.Logger
}

var _ Resolver = (*DoHClient)(nil)

// NewDoH constructs a DoH session. An empty endpoint selects DefaultDoHURL.
// A non-empty endpoint must parse as an http(s) URL; anything else is a
// configuration error.
func NewDoH(endpoint string, logger *slog.Logger) (*DoHClient, error) {
	if endpoint == "" {
		endpoint = DefaultDoHURL
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", apperr.ErrInvalidEndpoint, endpoint, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("%w: %q: unsupported scheme %q", apperr.ErrInvalidEndpoint, endpoint, u.Scheme)
	}
	client := req.C().SetTimeout(DefaultTimeout)
	return &DoHClient{client: client, url: endpoint, logger: logger}, nil
}

// Lookup issues an A query over HTTPS and reduces the exchange to an Outcome.
func (c *DoHClient) Lookup(ctx context.Context, domain string) Outcome {
	if _, ok := dns.IsDomainName(domain); !ok {
		c.logger.Debug("unencodable domain name", "domain", domain)
		return Failed(FailureMessage)
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	wire, err := m.Pack()
	if err != nil {
		c.logger.Debug("packing query failed", "domain", domain, "error", err)
		return Failed(FailureMessage)
	}
	encoded := base64.RawURLEncoding.EncodeToString(wire)

	httpResp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/dns-message").
		SetQueryParam("dns", encoded).
		Get(c.url)
	if err != nil {
		c.logger.Debug("DoH request failed", "domain", domain, "error", err)
		return outcomeFromHTTPError(err)
	}
	if !httpResp.IsSuccessState() {
		c.logger.Debug("DoH endpoint returned failure status",
			"domain", domain, "status", httpResp.StatusCode)
		return Failed(FailureTransport)
	}

	reply := new(dns.Msg)
	if err := reply.Unpack(httpResp.Bytes()); err != nil {
		c.logger.Debug("undecodable DoH response", "domain", domain, "error", err)
		return Failed(FailureProtocol)
	}
	out := outcomeFromResponse(reply)
	c.logger.Debug("lookup finished", "domain", domain, "outcome", out.Kind.String())
	return out
}

// outcomeFromHTTPError maps an HTTP client error onto the failure taxonomy.
func outcomeFromHTTPError(err error) Outcome {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return Failed(FailureTimeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Failed(FailureTimeout)
	}
	return Failed(FailureTransport)
}
