// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"strconv"
	"strings"
)

// Ssrc binds an attribute to one synchronization source within a media
// stream, rfc5576 section 4.1:
//
//	a=ssrc:<ssrc-id> <attribute>
//	a=ssrc:<ssrc-id> <attribute>:<value>
type Ssrc struct {
	ID        uint32
	Attribute string
	// Value is nil for the bare form with no ":" after the attribute
	// name. The value keeps any further ":" characters it contains.
	Value *string
}

func (Ssrc) attribute() {}

// Unmarshal parses the value of an "a=ssrc:" line.
func (s *Ssrc) Unmarshal(raw string) error {
	id, blob, err := splitPair(raw, ' ')
	if err != nil {
		return err
	}

	key, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, id)
	}

	name, value, found := strings.Cut(blob, ":")
	if name == "" {
		return fmt.Errorf("%w `%v`", errSDPInvalidSyntax, raw)
	}

	s.ID = uint32(key)
	s.Attribute = name
	if found {
		s.Value = &value
	} else {
		s.Value = nil
	}

	return nil
}

func (s Ssrc) String() string {
	return stringFromMarshal(s.marshalInto, s.marshalSize)
}

func (s Ssrc) marshalInto(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(s.ID), 10)
	b = append(b, ' ')
	b = append(b, s.Attribute...)

	if s.Value != nil {
		b = append(b, ':')
		b = append(b, *s.Value...)
	}

	return b
}

func (s Ssrc) marshalSize() (size int) {
	size = lenUint(uint64(s.ID)) + 1 + len(s.Attribute)
	if s.Value != nil {
		size += 1 + len(*s.Value)
	}

	return
}
