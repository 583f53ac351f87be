package apperr

import "errors"

// ErrInvalidNameServer is returned when the configured resolver endpoint is not
// a valid IP address. Use errors.Is(err, apperr.ErrInvalidNameServer) to detect
// it uniformly across packages.
var ErrInvalidNameServer = errors.New("invalid name server")

// ErrInvalidEndpoint is returned when a DNS-over-HTTPS endpoint URL cannot be
// parsed or uses an unsupported scheme.
var ErrInvalidEndpoint = errors.New("invalid DoH endpoint")

// ErrInvalidInput is returned when a domain list cannot be read or parsed.
var ErrInvalidInput = errors.New("invalid input")
