// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// NetKind is the <nettype> token of "c=" and "o=" lines. "IN" is the only
// type currently registered with IANA, meaning Internet.
// https://tools.ietf.org/html/rfc4566#section-8.2.6
type NetKind int

// NetKindInternet is the "IN" network type.
const NetKindInternet NetKind = 1

const netKindInternetStr = "IN"

// NewNetKind matches raw against the registered network types.
func NewNetKind(raw string) (NetKind, error) {
	if raw == netKindInternetStr {
		return NetKindInternet, nil
	}

	return NetKind(unknown), fmt.Errorf("%w `%v`", errSDPInvalidValue, raw)
}

func (n NetKind) String() string {
	if n == NetKindInternet {
		return netKindInternetStr
	}

	return ""
}

// AddrKind is the <addrtype> token giving the family of the address that
// follows it. "IP4" and "IP6" are the types registered with IANA.
// https://tools.ietf.org/html/rfc4566#section-8.2.7
type AddrKind int

const (
	// AddrKindIP4 is the "IP4" address type.
	AddrKindIP4 AddrKind = iota + 1
	// AddrKindIP6 is the "IP6" address type.
	AddrKindIP6
)

const (
	addrKindIP4Str = "IP4"
	addrKindIP6Str = "IP6"
)

// NewAddrKind matches raw against the registered address types.
func NewAddrKind(raw string) (AddrKind, error) {
	switch raw {
	case addrKindIP4Str:
		return AddrKindIP4, nil
	case addrKindIP6Str:
		return AddrKindIP6, nil
	default:
		return AddrKind(unknown), fmt.Errorf("%w `%v`", errSDPInvalidValue, raw)
	}
}

func (a AddrKind) String() string {
	switch a {
	case AddrKindIP4:
		return addrKindIP4Str
	case AddrKindIP6:
		return addrKindIP6Str
	default:
		return ""
	}
}

// Addr is the structured <connection-address> token of a "c=" line. For
// IPv4 multicast the address may carry a scoping TTL and a count of
// consecutive addresses, each behind a "/".
type Addr struct {
	IP netip.Addr
	// IPv6 multicast does not use TTL scoping, so a TTL must not be
	// present for IPv6 multicast addresses; scoped addresses limit the
	// scope of IPv6 conferences instead. The parser does not enforce
	// that rule.
	TTL   *uint16
	Count *uint8
}

// Unmarshal parses `<ip>[/<ttl>[/<count>]]`. Slash-separated segments
// beyond the third are ignored.
func (a *Addr) Unmarshal(raw string) error {
	fields := strings.Split(raw, "/")

	ip, err := netip.ParseAddr(fields[0])
	if err != nil {
		return fmt.Errorf("%w `%v`", errSDPInvalidAddress, fields[0])
	}

	var ttl *uint16
	if len(fields) > 1 {
		t, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, fields[1])
		}

		ttl16 := uint16(t)
		ttl = &ttl16
	}

	var count *uint8
	if len(fields) > 2 {
		c, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil {
			return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, fields[2])
		}

		count8 := uint8(c)
		count = &count8
	}

	a.IP = ip
	a.TTL = ttl
	a.Count = count

	return nil
}

// String renders the address with each optional suffix omitted when
// absent; it never emits a "/" with nothing after it.
func (a Addr) String() string {
	return stringFromMarshal(a.marshalInto, a.marshalSize)
}

func (a Addr) marshalInto(b []byte) []byte {
	b = a.IP.AppendTo(b)

	if a.TTL != nil {
		b = append(b, '/')
		b = strconv.AppendUint(b, uint64(*a.TTL), 10)
	}
	if a.Count != nil {
		b = append(b, '/')
		b = strconv.AppendUint(b, uint64(*a.Count), 10)
	}

	return b
}

func (a Addr) marshalSize() (size int) {
	size = len(a.IP.String())
	if a.TTL != nil {
		size += 1 + lenUint(uint64(*a.TTL))
	}
	if a.Count != nil {
		size += 1 + lenUint(uint64(*a.Count))
	}

	return
}

// Connection is the "c=" line (connection-field), which contains the
// information necessary to establish a network connection.
type Connection struct {
	NetKind  NetKind
	AddrKind AddrKind
	Addr     Addr
}

// Unmarshal parses the value of a "c=" line,
// `<nettype> <addrtype> <connection-address>`.
func (c *Connection) Unmarshal(raw string) error {
	nettype, addrtype, address, err := splitTriple(raw, ' ')
	if err != nil {
		return err
	}

	netKind, err := NewNetKind(nettype)
	if err != nil {
		return err
	}

	addrKind, err := NewAddrKind(addrtype)
	if err != nil {
		return err
	}

	var addr Addr
	if err := addr.Unmarshal(address); err != nil {
		return err
	}

	c.NetKind = netKind
	c.AddrKind = addrKind
	c.Addr = addr

	return nil
}

func (c Connection) String() string {
	return stringFromMarshal(c.marshalInto, c.marshalSize)
}

func (c Connection) marshalInto(b []byte) []byte {
	b = append(append(b, c.NetKind.String()...), ' ')
	b = append(append(b, c.AddrKind.String()...), ' ')

	return c.Addr.marshalInto(b)
}

func (c Connection) marshalSize() int {
	return len(c.NetKind.String()) + 1 + len(c.AddrKind.String()) + 1 + c.Addr.marshalSize()
}
