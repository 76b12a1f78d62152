package main

import (
	"crypto/x509"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfSignedCert(t *testing.T) {
	lan := net.IPv4(192, 168, 1, 20)
	cert, err := selfSignedCert([]net.IP{net.IPv4(127, 0, 0, 1), lan})
	require.NoError(t, err)
	require.Len(t, cert.Certificate, 1)

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	assert.Equal(t, "watchface-serve", leaf.Subject.CommonName)
	assert.Contains(t, leaf.DNSNames, "localhost")
	require.Len(t, leaf.IPAddresses, 2)
	assert.True(t, leaf.IPAddresses[1].Equal(lan))
	assert.WithinDuration(t, time.Now().Add(certLifetime), leaf.NotAfter, time.Minute)

	assert.NoError(t, leaf.VerifyHostname("localhost"))
	assert.NoError(t, leaf.VerifyHostname("192.168.1.20"))
	assert.Error(t, leaf.VerifyHostname("10.0.0.1"))
}

func TestIPv4Of(t *testing.T) {
	tests := []struct {
		addr net.Addr
		want net.IP
	}{
		{&net.IPNet{IP: net.IPv4(10, 0, 0, 7), Mask: net.CIDRMask(8, 32)}, net.IPv4(10, 0, 0, 7)},
		{&net.IPAddr{IP: net.IPv4(192, 168, 0, 2)}, net.IPv4(192, 168, 0, 2)},
		{&net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(8, 32)}, nil},
		{&net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)}, nil},
	}
	for _, tt := range tests {
		got := ipv4Of(tt.addr)
		if tt.want == nil {
			assert.Nil(t, got, tt.addr.String())
			continue
		}
		assert.True(t, tt.want.Equal(got), "%s: got %v", tt.addr, got)
	}
}

func TestCertIPsIncludeLoopback(t *testing.T) {
	ips := certIPs()
	require.NotEmpty(t, ips)
	assert.True(t, ips[0].IsLoopback())
}
