// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package webserver

import (
	"crypto/tls"
	"errors"
	"fmt"
)

// ErrTLSPairIncomplete is returned when only one of the certificate/key
// pair is configured. Supplying half a pair is a configuration error, not
// a request to fall back to plaintext.
var ErrTLSPairIncomplete = errors.New("both a certificate file and a key file are required for TLS")

// tlsConfig builds a tls.Config from the configured certificate/key pair.
//
// Returns (nil, nil) when no TLS is configured. Returns an error when only
// one path is set or when the pair cannot be loaded, so startup fails fast
// before any socket is bound.
func (c *Config) tlsConfig() (*tls.Config, error) {
	certFile, keyFile := c.TLS.CertFile, c.TLS.KeyFile

	switch {
	case certFile == "" && keyFile == "":
		return nil, nil
	case certFile == "" || keyFile == "":
		return nil, ErrTLSPairIncomplete
	}

	pair, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS key pair: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{pair},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
