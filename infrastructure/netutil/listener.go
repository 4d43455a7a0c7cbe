// ABOUTME: Listener helpers for binding the API to a fixed or discovered port
// ABOUTME: Keeps the bound listener so the advertised port cannot be taken by another process

package netutil

import (
	"fmt"
	"net"
	"strconv"
)

// Listen binds host:port. An empty port asks the kernel for a free one.
// The returned port is the one actually bound.
func Listen(host, port string) (net.Listener, int, error) {
	if port == "" {
		port = "0"
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, 0, fmt.Errorf("bind %s:%s: %w", host, port, err)
	}

	addr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		ln.Close()
		return nil, 0, fmt.Errorf("bind %s:%s: unexpected address %s", host, port, ln.Addr())
	}

	return ln, addr.Port, nil
}

// CallbackURL builds the query URL advertised to the registrar
func CallbackURL(host string, port int) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/query"
}
