package hue

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var ErrMissingHost = errors.New("need a host")

// InvalidHostError is returned when a host cannot be resolved to an address.
type InvalidHostError struct {
	Host string
	Err  error
}

func (e *InvalidHostError) Error() string {
	return fmt.Sprintf("not an hostname or IP: %q", e.Host)
}

func (e *InvalidHostError) Unwrap() error {
	return e.Err
}

// Resolver is satisfied by *net.Resolver.
type Resolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

// ValidateHost resolves host to an IPv4 address. A "host:port" value keeps its port.
func ValidateHost(ctx context.Context, resolver Resolver, host string) (string, error) {
	if host == "" {
		return "", ErrMissingHost
	}
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	name, port := host, ""
	if h, p, err := net.SplitHostPort(host); err == nil {
		name, port = h, p
	}

	ips, err := resolver.LookupIP(ctx, "ip4", name)
	if err != nil {
		return "", &InvalidHostError{Host: host, Err: err}
	}
	if len(ips) == 0 {
		return "", &InvalidHostError{Host: host, Err: errors.New("no addresses found")}
	}

	addr := ips[0].String()
	if port != "" {
		addr = net.JoinHostPort(addr, port)
	}
	return addr, nil
}
