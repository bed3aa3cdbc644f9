// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"strconv"
	"strings"
)

// RtpMap maps an RTP payload type number to an encoding name, clock rate,
// and encoding parameters, rfc8866 section 6.6:
//
//	a=rtpmap:<payload type> <encoding name>/<clock rate>[/<encoding parameters>]
//
// For audio streams the encoding parameters carry the number of channels,
// which is the only form decoded here.
type RtpMap struct {
	Payload   uint8
	Encoding  string
	ClockRate *uint32
	Channels  *uint16
}

func (RtpMap) attribute() {}

// Unmarshal parses the value of an "a=rtpmap:" line. The clock rate and
// channel count are trailing-optional; slash-separated segments beyond the
// third are ignored.
func (r *RtpMap) Unmarshal(raw string) error {
	payload, value, err := splitPair(raw, ' ')
	if err != nil {
		return err
	}

	key, err := strconv.ParseUint(payload, 10, 8)
	if err != nil {
		return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, payload)
	}

	fields := strings.Split(value, "/")
	if fields[0] == "" {
		return fmt.Errorf("%w `%v`", errSDPInvalidValue, value)
	}

	var clockRate *uint32
	if len(fields) > 1 {
		rate, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, fields[1])
		}

		rate32 := uint32(rate)
		clockRate = &rate32
	}

	var channels *uint16
	if len(fields) > 2 {
		count, err := strconv.ParseUint(fields[2], 10, 16)
		if err != nil {
			return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, fields[2])
		}

		count16 := uint16(count)
		channels = &count16
	}

	r.Payload = uint8(key)
	r.Encoding = fields[0]
	r.ClockRate = clockRate
	r.Channels = channels

	return nil
}

func (r RtpMap) String() string {
	return stringFromMarshal(r.marshalInto, r.marshalSize)
}

func (r RtpMap) marshalInto(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(r.Payload), 10)
	b = append(b, ' ')
	b = append(b, r.Encoding...)

	if r.ClockRate != nil {
		b = append(b, '/')
		b = strconv.AppendUint(b, uint64(*r.ClockRate), 10)
	}
	if r.Channels != nil {
		b = append(b, '/')
		b = strconv.AppendUint(b, uint64(*r.Channels), 10)
	}

	return b
}

func (r RtpMap) marshalSize() (size int) {
	size = lenUint(uint64(r.Payload)) + 1 + len(r.Encoding)
	if r.ClockRate != nil {
		size += 1 + lenUint(uint64(*r.ClockRate))
	}
	if r.Channels != nil {
		size += 1 + lenUint(uint64(*r.Channels))
	}

	return
}
