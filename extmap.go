// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"strconv"
)

// ExtMap defines the mapping from the extension numbers used in RTP packet
// headers into the extension names registered for them, rfc8285.
type ExtMap struct {
	ID  uint8
	URI string
}

func (ExtMap) attribute() {}

// Unmarshal parses the value of an "a=extmap:" line, `<id> <uri>`. The URI
// starts after the first space and keeps everything that follows it.
func (e *ExtMap) Unmarshal(raw string) error {
	id, uri, err := splitPair(raw, ' ')
	if err != nil {
		return err
	}

	key, err := strconv.ParseUint(id, 10, 8)
	if err != nil {
		return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, id)
	}

	e.ID = uint8(key)
	e.URI = uri

	return nil
}

func (e ExtMap) String() string {
	return stringFromMarshal(e.marshalInto, e.marshalSize)
}

func (e ExtMap) marshalInto(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(e.ID), 10)
	b = append(b, ' ')

	return append(b, e.URI...)
}

func (e ExtMap) marshalSize() int {
	return lenUint(uint64(e.ID)) + 1 + len(e.URI)
}
