// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Fmtp carries parameters specific to a particular format in a way that
// SDP does not have to understand them, rfc8866 section 6.15. The
// parameters are given unchanged to the media tool that uses the format.
type Fmtp struct {
	Format uint8
	// Parameters maps each parameter name to its value; a nil value marks
	// a bare parameter name that appeared without "=". A name occurring
	// more than once keeps only its last value.
	Parameters map[string]*string
}

func (Fmtp) attribute() {}

// Unmarshal parses the value of an "a=fmtp:" line,
// `<format> <name>[=<value>][;<name>[=<value>]...]`.
func (f *Fmtp) Unmarshal(raw string) error {
	format, blob, err := splitPair(raw, ' ')
	if err != nil {
		return err
	}

	key, err := strconv.ParseUint(format, 10, 8)
	if err != nil {
		return fmt.Errorf("%w `%v`", errSDPInvalidNumericValue, format)
	}

	parameters := make(map[string]*string, 5)
	for _, entry := range strings.Split(blob, ";") {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			parameters[name] = nil
			continue
		}

		parameters[name] = &value
	}

	f.Format = uint8(key)
	f.Parameters = parameters

	return nil
}

// String renders the fmtp value with its parameters in sorted name order,
// so the output is deterministic.
func (f Fmtp) String() string {
	return stringFromMarshal(f.marshalInto, f.marshalSize)
}

func (f Fmtp) marshalInto(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(f.Format), 10)
	b = append(b, ' ')

	names := make([]string, 0, len(f.Parameters))
	for name := range f.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i > 0 {
			b = append(b, ';')
		}
		b = append(b, name...)
		if value := f.Parameters[name]; value != nil {
			b = append(b, '=')
			b = append(b, *value...)
		}
	}

	return b
}

func (f Fmtp) marshalSize() (size int) {
	size = lenUint(uint64(f.Format)) + 1
	for name, value := range f.Parameters {
		size += len(name) + 1
		if value != nil {
			size += 1 + len(*value)
		}
	}

	return
}
