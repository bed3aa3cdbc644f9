// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKind(t *testing.T) {
	for raw, expected := range map[string]Kind{
		"broadcast": KindBroadcast,
		"meeting":   KindMeeting,
		"moderated": KindModerated,
		"test":      KindTest,
		"H332":      KindH332,
	} {
		kind, err := NewKind(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, expected, kind, raw)
		assert.Equal(t, raw, kind.String(), raw)
	}
}

func TestNewKindInvalid(t *testing.T) {
	// The vocabulary is closed and case-sensitive.
	for _, raw := range []string{"av1x", "Broadcast", "h332", "BROADCAST", ""} {
		_, err := NewKind(raw)
		assert.ErrorIs(t, err, errSDPInvalidValue, raw)
	}
}
