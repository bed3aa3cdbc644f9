// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import "fmt"

// Kind is the type of the multimedia conference carried by an "a=type:"
// line, rfc8866 section 6.9. The value hints at which other options are
// appropriate: "broadcast" suggests "a=recvonly" for those connecting,
// "meeting" suggests "a=sendrecv", "moderated" suggests a floor control
// tool, "H332" marks a loosely coupled ITU H.332 session, and "test" hints
// that receivers can avoid displaying the session to users.
type Kind int

const (
	// KindBroadcast is the "broadcast" conference type.
	KindBroadcast Kind = iota + 1
	// KindMeeting is the "meeting" conference type.
	KindMeeting
	// KindModerated is the "moderated" conference type.
	KindModerated
	// KindTest is the "test" conference type.
	KindTest
	// KindH332 is the "H332" conference type.
	KindH332
)

const (
	kindBroadcastStr = "broadcast"
	kindMeetingStr   = "meeting"
	kindModeratedStr = "moderated"
	kindTestStr      = "test"
	kindH332Str      = "H332"
)

func (Kind) attribute() {}

// NewKind matches raw against the registered conference types. The names
// are case-sensitive.
func NewKind(raw string) (Kind, error) {
	switch raw {
	case kindBroadcastStr:
		return KindBroadcast, nil
	case kindMeetingStr:
		return KindMeeting, nil
	case kindModeratedStr:
		return KindModerated, nil
	case kindTestStr:
		return KindTest, nil
	case kindH332Str:
		return KindH332, nil
	default:
		return Kind(unknown), fmt.Errorf("%w `%v`", errSDPInvalidValue, raw)
	}
}

func (k Kind) String() string {
	switch k {
	case KindBroadcast:
		return kindBroadcastStr
	case KindMeeting:
		return kindMeetingStr
	case KindModerated:
		return kindModeratedStr
	case KindTest:
		return kindTestStr
	case KindH332:
		return kindH332Str
	default:
		return ""
	}
}
