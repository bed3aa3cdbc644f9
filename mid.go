// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import "fmt"

// Mid is the identification-tag of a media description, rfc5888. The tag
// is an opaque token; grouping attributes at session level refer to media
// descriptions by it.
//
// ParseAttribute does not currently recognize the "mid" key, so an
// "a=mid:" line comes back as Other; the type exists for callers that
// promote the tag themselves.
type Mid string

func (Mid) attribute() {}

// Unmarshal parses the value of an "a=mid:" line. The only invalid token
// is the empty one.
func (m *Mid) Unmarshal(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w `%v`", errSDPInvalidSyntax, raw)
	}

	*m = Mid(raw)

	return nil
}

func (m Mid) String() string {
	return string(m)
}
