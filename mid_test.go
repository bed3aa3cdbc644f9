// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidUnmarshal(t *testing.T) {
	for _, raw := range []string{"audio", "video", "0", "1"} {
		var mid Mid
		assert.NoError(t, mid.Unmarshal(raw), raw)
		assert.Equal(t, Mid(raw), mid, raw)
		assert.Equal(t, raw, mid.String(), raw)
	}
}

func TestMidUnmarshalEmpty(t *testing.T) {
	var mid Mid
	assert.ErrorIs(t, mid.Unmarshal(""), errSDPInvalidSyntax)
}
