// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import "fmt"

// Orient is the intended screen orientation of a whiteboard or similar
// media tool, carried by an "a=orient:" line.
type Orient int

const (
	// OrientPortrait is the "portrait" orientation.
	OrientPortrait Orient = iota + 1
	// OrientLandscape is the "landscape" orientation.
	OrientLandscape
	// OrientSeascape is the "seascape" (upside-down landscape) orientation.
	OrientSeascape
)

const (
	orientPortraitStr  = "portrait"
	orientLandscapeStr = "landscape"
	orientSeascapeStr  = "seascape"
)

func (Orient) attribute() {}

// NewOrient matches raw against the orientation names. The names are
// case-sensitive.
func NewOrient(raw string) (Orient, error) {
	switch raw {
	case orientPortraitStr:
		return OrientPortrait, nil
	case orientLandscapeStr:
		return OrientLandscape, nil
	case orientSeascapeStr:
		return OrientSeascape, nil
	default:
		return Orient(unknown), fmt.Errorf("%w `%v`", errSDPInvalidValue, raw)
	}
}

func (o Orient) String() string {
	switch o {
	case OrientPortrait:
		return orientPortraitStr
	case OrientLandscape:
		return orientLandscapeStr
	case OrientSeascape:
		return orientSeascapeStr
	default:
		return ""
	}
}
