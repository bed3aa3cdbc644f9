// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package sdp implements the attribute ("a=") and connection ("c=") line
// grammar of the Session Description Protocol, rfc8866. Parsed values keep
// slicing the line they were decoded from; nothing in this package copies
// attribute payload text.
package sdp

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute is the body of one "a=" line, decoded into the concrete type
// matching its key. The set of types is closed: every recognized key maps
// to exactly one type below, and any other key is carried through as Other.
type Attribute interface {
	fmt.Stringer

	attribute()
}

// ParseAttribute decodes `key[:value]`, the body of an "a=" line with the
// prefix already stripped.
//
// A body with no ":" is a flag and comes back as Other with a nil Value.
// A recognized key routes its value to the matching sub-parser, and a
// sub-parser failure is returned as-is; a recognized key with a malformed
// value is never downgraded to Other. Anything else round-trips through
// Other untouched.
func ParseAttribute(line string) (Attribute, error) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return Other{Key: line}, nil
	}

	switch key {
	case "fmtp":
		var fmtp Fmtp
		if err := fmtp.Unmarshal(value); err != nil {
			return nil, err
		}

		return fmtp, nil
	case "rtpmap":
		var rtpMap RtpMap
		if err := rtpMap.Unmarshal(value); err != nil {
			return nil, err
		}

		return rtpMap, nil
	case "extmap":
		var extMap ExtMap
		if err := extMap.Unmarshal(value); err != nil {
			return nil, err
		}

		return extMap, nil
	case "lang":
		return Lang(value), nil
	case "charset":
		return Charset(value), nil
	case "sdplang":
		return SdpLang(value), nil
	case "ptime":
		ptime, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, value)
		}

		return Ptime(ptime), nil
	case "maxptime":
		maxPtime, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, value)
		}

		return MaxPtime(maxPtime), nil
	case "orient":
		orient, err := NewOrient(value)
		if err != nil {
			return nil, err
		}

		return orient, nil
	case "type":
		kind, err := NewKind(value)
		if err != nil {
			return nil, err
		}

		return kind, nil
	case "framerate":
		framerate, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, value)
		}

		return Framerate(framerate), nil
	case "quality":
		quality, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, value)
		}

		return Quality(quality), nil
	case "ssrc":
		var ssrc Ssrc
		if err := ssrc.Unmarshal(value); err != nil {
			return nil, err
		}

		return ssrc, nil
	default:
		return Other{Key: key, Value: &value}, nil
	}
}

// Ptime gives the length of time in milliseconds represented by the media
// in a packet. It is probably only meaningful for audio data, and is
// intended as a recommendation for the encoding/packetization of audio.
type Ptime uint64

// MaxPtime gives the maximum amount of media that can be encapsulated in
// each packet, expressed as time in milliseconds. For frame-based codecs
// the time should be an integer multiple of the frame size.
type MaxPtime uint64

// Framerate gives the maximum video frame rate in frames/sec. It is
// defined only for video media.
type Framerate uint16

// Quality suggests the quality of the encoding as an integer value. For
// video the range is 0 to 10 by convention, 10 being the best still-image
// quality the compression scheme can give; the value is not range-checked
// here.
type Quality uint8

// Charset specifies the character set used to display the session name
// and information data. The identifier must be one registered in the IANA
// Character Sets registry, such as ISO-8859-1.
type Charset string

// SdpLang specifies the language of the session description itself, as a
// single rfc5646 language tag. At media level it overrides any
// session-level tag.
type SdpLang string

// Lang specifies an initial language capability for the session or media,
// as a single rfc5646 language tag. Multiple "a=lang:" lines rank the
// languages from most to least preferred.
type Lang string

// Recvonly specifies that the tools should be started in receive-only
// mode where applicable. The line carries no value, so ParseAttribute
// currently returns it as Other("recvonly", nil); the type exists for
// callers that promote the flag themselves.
type Recvonly bool

// Sendrecv specifies that the tools should be started in send-and-receive
// mode. Not produced by ParseAttribute; see Recvonly.
type Sendrecv bool

// Sendonly specifies that the tools should be started in send-only mode.
// Not produced by ParseAttribute; see Recvonly.
type Sendonly bool

// Inactive specifies that the tools should be started in inactive mode,
// as used when a conference participant is put on hold. Not produced by
// ParseAttribute; see Recvonly.
type Inactive bool

// Other carries any attribute whose key is outside the recognized table.
// A nil Value means the line had no ":" at all. Unknown attributes are not
// an error; they round-trip losslessly.
type Other struct {
	Key   string
	Value *string
}

func (Ptime) attribute()     {}
func (MaxPtime) attribute()  {}
func (Framerate) attribute() {}
func (Quality) attribute()   {}
func (Charset) attribute()   {}
func (SdpLang) attribute()   {}
func (Lang) attribute()      {}
func (Recvonly) attribute()  {}
func (Sendrecv) attribute()  {}
func (Sendonly) attribute()  {}
func (Inactive) attribute()  {}
func (Other) attribute()     {}

func (p Ptime) String() string {
	return strconv.FormatUint(uint64(p), 10)
}

func (m MaxPtime) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

func (f Framerate) String() string {
	return strconv.FormatUint(uint64(f), 10)
}

func (q Quality) String() string {
	return strconv.FormatUint(uint64(q), 10)
}

func (c Charset) String() string {
	return string(c)
}

func (s SdpLang) String() string {
	return string(s)
}

func (l Lang) String() string {
	return string(l)
}

func (Recvonly) String() string {
	return "recvonly"
}

func (Sendrecv) String() string {
	return "sendrecv"
}

func (Sendonly) String() string {
	return "sendonly"
}

func (Inactive) String() string {
	return "inactive"
}

func (o Other) String() string {
	if o.Value == nil {
		return o.Key
	}

	return o.Key + ":" + *o.Value
}
