package tangle

import (
	"net/url"
	"strings"

	"github.com/matzehuels/lit/pkg/errors"
)

// Scheme is the URL scheme that marks a fenced code block as a tangle
// fragment. Info strings with any other scheme are ordinary code blocks.
const Scheme = "tangle"

// positionParam is the query parameter naming an explicit position key.
const positionParam = "at"

// Address is the parsed destination of a tangle fragment.
type Address struct {
	// Path is the destination file path, relative to the output directory.
	Path string

	// Pos is the validated position key, or the sentinel when the address
	// carries no "at" parameter.
	Pos Position
}

// ParseAddress interprets a fenced code block's info string as a tangle
// address.
//
// The boolean result distinguishes "not a tangle fragment" (false, nil
// error: skip silently) from a recognized but malformed tangle address,
// which is always a fatal error. An address clearly intended for tangling
// must never be dropped quietly, since that would silently omit code from
// the output.
//
// Valid addresses are hostless: "tangle:///main.rs" or "tangle:/main.rs".
// The two-slash spelling "tangle://main.rs" parses the destination into the
// authority slot and is rejected, not repaired.
func ParseAddress(info string) (Address, bool, error) {
	info = strings.TrimSpace(info)
	if info == "" || !strings.HasPrefix(info, Scheme+":") {
		return Address{}, false, nil
	}

	u, err := url.Parse(info)
	if err != nil {
		return Address{}, false, errors.Wrap(errors.ErrCodeInvalidAddress, err, "malformed tangle address %q", info)
	}
	if u.Host != "" || u.User != nil {
		return Address{}, false, errors.New(errors.ErrCodeInvalidAddress,
			"tangle address %q has an authority component %q; write tangle:///%s instead",
			info, u.Host, u.Host)
	}
	if u.Fragment != "" {
		return Address{}, false, errors.New(errors.ErrCodeInvalidAddress,
			"tangle address %q has a fragment component", info)
	}

	path, err := destinationPath(u, info)
	if err != nil {
		return Address{}, false, err
	}

	pos, err := position(u, info)
	if err != nil {
		return Address{}, false, err
	}

	return Address{Path: path, Pos: pos}, true, nil
}

// destinationPath extracts and validates the relative destination path.
func destinationPath(u *url.URL, info string) (string, error) {
	var path string
	switch {
	case u.Opaque != "":
		// "tangle:main.rs" - no separator, already relative.
		path = u.Opaque
	case u.Path != "":
		// "tangle:/main.rs" or "tangle:///main.rs" - strip exactly one
		// leading separator. A second one would imply an absolute or
		// UNC-like destination.
		path = strings.TrimPrefix(u.Path, "/")
		if strings.HasPrefix(path, "/") {
			return "", errors.New(errors.ErrCodeInvalidAddress,
				"tangle address %q has an absolute destination path %q", info, u.Path)
		}
	default:
		return "", errors.New(errors.ErrCodeInvalidAddress, "tangle address %q has no destination path", info)
	}

	if path == "" {
		return "", errors.New(errors.ErrCodeInvalidAddress, "tangle address %q has an empty destination path", info)
	}
	if err := errors.ValidateDestinationPath(path); err != nil {
		return "", err
	}
	return path, nil
}

// position extracts the explicit position key, or the sentinel when absent.
// A malformed explicit key is fatal: coercing it to the default would
// silently reorder output.
func position(u *url.URL, info string) (Position, error) {
	if u.RawQuery == "" {
		return DefaultPosition(), nil
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return Position{}, errors.Wrap(errors.ErrCodeInvalidAddress, err, "malformed query in tangle address %q", info)
	}

	for key := range query {
		if key != positionParam {
			return Position{}, errors.New(errors.ErrCodeInvalidAddress,
				"tangle address %q has unknown query parameter %q (only %q is recognized)", info, key, positionParam)
		}
	}

	values := query[positionParam]
	if len(values) == 0 {
		return DefaultPosition(), nil
	}
	if len(values) > 1 {
		return Position{}, errors.New(errors.ErrCodeInvalidAddress,
			"tangle address %q repeats the %q parameter", info, positionParam)
	}
	return NewPosition(values[0])
}
