// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionUnmarshal(t *testing.T) {
	t.Run("Unicast IPv4", func(t *testing.T) {
		var connection Connection
		require.NoError(t, connection.Unmarshal("IN IP4 0.0.0.0"))
		assert.Equal(t, NetKindInternet, connection.NetKind)
		assert.Equal(t, AddrKindIP4, connection.AddrKind)
		assert.Equal(t, netip.MustParseAddr("0.0.0.0"), connection.Addr.IP)
		assert.Nil(t, connection.Addr.TTL)
		assert.Nil(t, connection.Addr.Count)
		assert.Equal(t, "IN IP4 0.0.0.0", connection.String())
	})

	t.Run("Multicast IPv4", func(t *testing.T) {
		var connection Connection
		require.NoError(t, connection.Unmarshal("IN IP4 224.2.36.42/127"))
		assert.Equal(t, ptrOf(uint16(127)), connection.Addr.TTL)
		assert.Nil(t, connection.Addr.Count)
		assert.Equal(t, "IN IP4 224.2.36.42/127", connection.String())
	})

	t.Run("IPv6", func(t *testing.T) {
		var connection Connection
		require.NoError(t, connection.Unmarshal("IN IP6 ff15::101"))
		assert.Equal(t, AddrKindIP6, connection.AddrKind)
		assert.Equal(t, "IN IP6 ff15::101", connection.String())
	})

	t.Run("Errors", func(t *testing.T) {
		for _, test := range []struct {
			raw      string
			expected error
		}{
			{"OUT IP4 0.0.0.0", errSDPInvalidValue},
			{"IN IPX 0.0.0.0", errSDPInvalidValue},
			{"IN IP4 example.com", errSDPInvalidAddress},
			{"IN IP4 224.2.36.42/x", errSDPInvalidNumericValue},
		} {
			var connection Connection
			assert.ErrorIs(t, connection.Unmarshal(test.raw), test.expected, test.raw)
		}
	})

	t.Run("Too Few Fields", func(t *testing.T) {
		var connection Connection
		err := connection.Unmarshal("IN IP4")

		var arityErr *ArityError
		assert.True(t, errors.As(err, &arityErr))
		assert.Equal(t, 3, arityErr.Want)
	})
}

func TestAddrUnmarshal(t *testing.T) {
	t.Run("TTL And Count", func(t *testing.T) {
		var addr Addr
		require.NoError(t, addr.Unmarshal("0.0.0.0/127/2"))
		assert.Equal(t, netip.MustParseAddr("0.0.0.0"), addr.IP)
		assert.Equal(t, ptrOf(uint16(127)), addr.TTL)
		assert.Equal(t, ptrOf(uint8(2)), addr.Count)
		assert.Equal(t, "0.0.0.0/127/2", addr.String())
	})

	t.Run("Segments Beyond Third Ignored", func(t *testing.T) {
		var addr Addr
		require.NoError(t, addr.Unmarshal("0.0.0.0/1/2/3/4"))
		assert.Equal(t, ptrOf(uint16(1)), addr.TTL)
		assert.Equal(t, ptrOf(uint8(2)), addr.Count)
	})

	t.Run("Errors", func(t *testing.T) {
		for _, test := range []struct {
			raw      string
			expected error
		}{
			{"", errSDPInvalidAddress},
			{"not-an-ip", errSDPInvalidAddress},
			{"0.0.0.0/ttl", errSDPInvalidNumericValue},
			{"0.0.0.0/65536", errSDPInvalidNumericValue},
			{"0.0.0.0/127/count", errSDPInvalidNumericValue},
			{"0.0.0.0/127/256", errSDPInvalidNumericValue},
		} {
			var addr Addr
			assert.ErrorIs(t, addr.Unmarshal(test.raw), test.expected, test.raw)
		}
	})
}

func TestConnectionRoundTrip(t *testing.T) {
	// Formatting a parsed value and re-parsing the text is the identity,
	// with the IP in its canonical textual form.
	for _, raw := range []string{
		"IN IP4 0.0.0.0",
		"IN IP4 224.2.36.42/127",
		"IN IP4 224.2.1.1/127/3",
		"IN IP6 ff15::101",
		"IN IP6 2001:db8::1",
	} {
		var connection Connection
		require.NoError(t, connection.Unmarshal(raw), raw)
		assert.Equal(t, raw, connection.String(), raw)

		var reparsed Connection
		require.NoError(t, reparsed.Unmarshal(connection.String()), raw)
		assert.Equal(t, connection, reparsed, raw)
	}
}
