package tangle

import (
	"strings"

	"github.com/matzehuels/lit/pkg/errors"
)

// Sentinel is the implicit position assigned to fragments that carry no
// explicit key. It sorts between "a..." and "z..." keys, so unkeyed
// fragments land in the middle of their destination file.
const Sentinel = "m"

// Position is a validated ordering key for a block within its destination
// file. A held Position is always valid: non-empty, lowercase ASCII letters
// only. Ordering between positions is plain lexicographic comparison.
type Position struct {
	key string
}

// DefaultPosition returns the sentinel position used for fragments without
// an explicit key.
func DefaultPosition() Position {
	return Position{key: Sentinel}
}

// NewPosition validates an explicit position key and returns its Position.
//
// Keys must be non-empty and consist solely of lowercase ASCII letters.
// The exact sentinel value "m" is reserved for unkeyed fragments and is
// rejected as an explicit key: accepting it would silently collide with
// every unpositioned fragment in the same destination. Keys that merely
// start with 'm' (such as "ma") are legal.
func NewPosition(key string) (Position, error) {
	if key == "" {
		return Position{}, errors.New(errors.ErrCodeInvalidPosition, "position key cannot be empty")
	}
	for _, r := range key {
		if r < 'a' || r > 'z' {
			return Position{}, errors.New(errors.ErrCodeInvalidPosition,
				"position key %q contains invalid character %q (lowercase a-z only)", key, r)
		}
	}
	if key == Sentinel {
		return Position{}, errors.New(errors.ErrCodeInvalidPosition,
			"position key %q is reserved for unpositioned fragments", Sentinel)
	}
	return Position{key: key}, nil
}

// String returns the raw key.
func (p Position) String() string {
	return p.key
}

// IsSentinel reports whether p is the implicit default position.
// Sentinel-positioned blocks never conflict with each other and keep their
// discovery order when rendered.
func (p Position) IsSentinel() bool {
	return p.key == Sentinel
}

// Compare orders two positions lexicographically. It returns a negative
// number when p sorts before other, zero when equal, positive otherwise.
func (p Position) Compare(other Position) int {
	return strings.Compare(p.key, other.key)
}
