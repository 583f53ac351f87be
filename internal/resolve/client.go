package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/dangledns/dangler/internal/apperr"
)

// DefaultTimeout bounds a single DNS exchange. The orchestrator does not add
// its own deadline on top; this is the only per-lookup bound.
const DefaultTimeout = 5 * time.Second

// fallbackServers are used when no custom name server is configured and the
// system resolver configuration cannot be read.
var fallbackServers = []string{"8.8.8.8:53", "8.8.4.4:53"}

// Client is a plaintext DNS resolver session. Queries go over UDP with a TCP
// retry on truncation. The zero value is not usable; construct with New.
type Client struct {
	udp     *dns.Client
	tcp     *dns.Client
	servers []string
	logger  *slog.Logger
}

var _ Resolver = (*Client)(nil)

// New constructs a resolver session for one batch. A non-empty nameserver must
// be an IP address literal and is targeted on port 53; anything else is a
// configuration error. With an empty nameserver the system resolvers from
// /etc/resolv.conf are used, falling back to Google public DNS.
func New(nameserver string, logger *slog.Logger) (*Client, error) {
	var servers []string
	if nameserver != "" {
		ip := net.ParseIP(nameserver)
		if ip == nil {
			return nil, fmt.Errorf("%w: %q is not an IP address", apperr.ErrInvalidNameServer, nameserver)
		}
		servers = []string{net.JoinHostPort(ip.String(), "53")}
	} else {
		servers = systemServers()
	}
	return &Client{
		udp:     &dns.Client{Net: "udp", Timeout: DefaultTimeout},
		tcp:     &dns.Client{Net: "tcp", Timeout: DefaultTimeout},
		servers: servers,
		logger:  logger,
	}, nil
}

// systemServers reads the resolvers from /etc/resolv.conf. On platforms or
// setups where that fails, the public fallback servers are returned.
func systemServers() []string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return fallbackServers
	}
	servers := make([]string, 0, len(conf.Servers))
	for _, s := range conf.Servers {
		servers = append(servers, net.JoinHostPort(s, conf.Port))
	}
	return servers
}

// Lookup issues an A query for domain and reduces the exchange to an Outcome.
// Transport-level failures and timeouts are retried against the next
// configured server; any definitive answer ends the loop.
func (c *Client) Lookup(ctx context.Context, domain string) Outcome {
	if _, ok := dns.IsDomainName(domain); !ok {
		c.logger.Debug("unencodable domain name", "domain", domain)
		return Failed(FailureMessage)
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeA)

	out := Failed(FailureTransport)
	for _, server := range c.servers {
		out = c.exchange(ctx, m, server)
		if out.Kind != FailureTransport && out.Kind != FailureTimeout {
			break
		}
		c.logger.Debug("lookup failed, trying next server",
			"domain", domain, "server", server, "failure", out.Kind.String())
	}
	c.logger.Debug("lookup finished", "domain", domain, "outcome", out.Kind.String())
	return out
}

// exchange performs one UDP round trip against server, retrying over TCP when
// the response is truncated.
func (c *Client) exchange(ctx context.Context, m *dns.Msg, server string) Outcome {
	resp, _, err := c.udp.ExchangeContext(ctx, m, server)
	if err == nil && resp.Truncated {
		resp, _, err = c.tcp.ExchangeContext(ctx, m, server)
	}
	if err != nil {
		return outcomeFromError(err)
	}
	return outcomeFromResponse(resp)
}

// outcomeFromError maps an exchange error onto the failure taxonomy. Timeouts
// and socket-level errors come out of the net package; everything else the dns
// package produces means the response could not be decoded.
func outcomeFromError(err error) Outcome {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return Failed(FailureTimeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Failed(FailureTimeout)
	}
	var oerr *net.OpError
	if errors.As(err, &oerr) || errors.Is(err, context.Canceled) {
		return Failed(FailureTransport)
	}
	return Failed(FailureProtocol)
}

// outcomeFromResponse reduces a decoded response to an Outcome. A response
// with no usable address records is a name-not-found carrying the rcode, even
// when the rcode is NOERROR.
func outcomeFromResponse(resp *dns.Msg) Outcome {
	if resp.Rcode == dns.RcodeSuccess {
		var addrs []net.IP
		for _, rr := range resp.Answer {
			switch v := rr.(type) {
			case *dns.A:
				addrs = append(addrs, v.A)
			case *dns.AAAA:
				addrs = append(addrs, v.AAAA)
			}
		}
		if len(addrs) > 0 {
			return Resolved(addrs)
		}
	}
	return NameNotFound(resp.Rcode)
}
