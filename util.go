// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"fmt"
	"strings"
)

const (
	unknown = iota
)

// ArityError reports a fixed-arity split that did not find enough
// separator-delimited fields in its input.
type ArityError struct {
	Input string
	Sep   byte
	Want  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("sdp: expected %d fields separated by %q `%v`", e.Want, string(e.Sep), e.Input)
}

// splitPair splits value at the first occurrence of sep. The second field
// keeps any further separators, so a value may itself contain sep.
func splitPair(value string, sep byte) (string, string, error) {
	i := strings.IndexByte(value, sep)
	if i < 0 {
		return "", "", &ArityError{Input: value, Sep: sep, Want: 2}
	}

	return value[:i], value[i+1:], nil
}

// splitTriple splits value at the first two occurrences of sep. The third
// field keeps any further separators.
func splitTriple(value string, sep byte) (string, string, string, error) {
	first, rest, err := splitPair(value, sep)
	if err != nil {
		return "", "", "", &ArityError{Input: value, Sep: sep, Want: 3}
	}

	second, third, err := splitPair(rest, sep)
	if err != nil {
		return "", "", "", &ArityError{Input: value, Sep: sep, Want: 3}
	}

	return first, second, third, nil
}

func stringFromMarshal(marshalFunc func([]byte) []byte, sizeFunc func() int) string {
	return string(marshalFunc(make([]byte, 0, sizeFunc())))
}

func lenUint(i uint64) (count int) {
	if i == 0 {
		return 1
	}

	for i != 0 {
		i /= 10
		count++
	}

	return
}
