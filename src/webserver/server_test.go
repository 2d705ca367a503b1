// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package webserver

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"errors"
	"math/big"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsalvino/agent/src/logger"
	"github.com/vsalvino/agent/src/phrase"
	"github.com/vsalvino/agent/src/router"
)

// newTestServer builds a Server bound to an ephemeral port on loopback.
func newTestServer(t *testing.T, mutate func(*Config)) *Server {
	t.Helper()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	if mutate != nil {
		mutate(cfg)
	}

	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	return New(cfg, router.New(phrase.New()), log)
}

// createTestKeyPair writes a self-signed certificate and key as PEM files
// and returns their paths.
func createTestKeyPair(t *testing.T) (certFile, keyFile string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "agent-test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IsCA:         true,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	keyBytes, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")

	require.NoError(t, os.WriteFile(certFile,
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes}), 0644))
	require.NoError(t, os.WriteFile(keyFile,
		pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes}), 0600))

	return certFile, keyFile
}

func TestStartTLSCertWithoutKey(t *testing.T) {
	certFile, _ := createTestKeyPair(t)

	srv := newTestServer(t, func(cfg *Config) {
		cfg.TLS.CertFile = certFile
	})

	err := srv.Start()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTLSPairIncomplete), "expected ErrTLSPairIncomplete, got %v", err)
	assert.Nil(t, srv.Addr(), "no listening socket may be opened on config error")
}

func TestStartTLSKeyWithoutCert(t *testing.T) {
	_, keyFile := createTestKeyPair(t)

	srv := newTestServer(t, func(cfg *Config) {
		cfg.TLS.KeyFile = keyFile
	})

	err := srv.Start()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTLSPairIncomplete))
	assert.Nil(t, srv.Addr())
}

func TestStartTLSUnreadableFiles(t *testing.T) {
	dir := t.TempDir()

	srv := newTestServer(t, func(cfg *Config) {
		cfg.TLS.CertFile = filepath.Join(dir, "missing-cert.pem")
		cfg.TLS.KeyFile = filepath.Join(dir, "missing-key.pem")
	})

	err := srv.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TLS key pair")
	assert.Nil(t, srv.Addr(), "no listening socket may be opened on config error")
}

func TestServeEndToEnd(t *testing.T) {
	srv := newTestServer(t, nil)
	require.NoError(t, srv.Start())
	require.NotNil(t, srv.Addr())

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, srv.Shutdown(ctx))
		require.NoError(t, <-done)
	}()

	base := srv.URL()
	catalogue := phrase.New().List()

	t.Run("PhraseRandom", func(t *testing.T) {
		resp, err := http.Get(base + "/phrase?random=true")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body struct {
			Random bool   `json:"random"`
			Phrase string `json:"phrase"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Random)
		assert.Contains(t, catalogue, body.Phrase, "phrase must be one of the known phrases")
	})

	t.Run("PhraseDefault", func(t *testing.T) {
		resp, err := http.Get(base + "/phrase")
		require.NoError(t, err)
		defer resp.Body.Close()

		var body struct {
			Random bool   `json:"random"`
			Phrase string `json:"phrase"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Random)
		assert.Equal(t, catalogue[0], body.Phrase)
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := http.Get(base + "/unknown")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "/unknown")
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		resp, err := http.Post(base+"/phrase", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})
}

func TestServeTLSEndToEnd(t *testing.T) {
	certFile, keyFile := createTestKeyPair(t)

	srv := newTestServer(t, func(cfg *Config) {
		cfg.TLS.CertFile = certFile
		cfg.TLS.KeyFile = keyFile
	})
	require.NoError(t, srv.Start())
	assert.Contains(t, srv.URL(), "https://")

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, srv.Shutdown(ctx))
		require.NoError(t, <-done)
	}()

	client := &http.Client{
		Transport: &http.Transport{
			// Self-signed test certificate
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	resp, err := client.Get(srv.URL() + "/phrase")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, resp.TLS, "response must arrive over TLS")
}

func TestRunGracefulShutdown(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&out)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0

	srv := New(cfg, router.New(phrase.New()), log)
	require.NoError(t, srv.Start())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get(srv.URL() + "/phrase")
	require.NoError(t, err)
	resp.Body.Close()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err, "interrupt is a normal shutdown request, not an error")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not shut down within 5 seconds")
	}

	assert.Contains(t, out.String(), "Bye.", "farewell message must be printed on shutdown")
}
