package tangle

import (
	"testing"

	"github.com/matzehuels/lit/pkg/errors"
)

func TestParseAddressValid(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		wantPath string
		wantPos  string
	}{
		{"triple slash", "tangle:///main.rs", "main.rs", "m"},
		{"single slash", "tangle:/main.rs", "main.rs", "m"},
		{"opaque form", "tangle:main.rs", "main.rs", "m"},
		{"nested path", "tangle:///src/lib.rs", "src/lib.rs", "m"},
		{"explicit position", "tangle:///lib.rs?at=a", "lib.rs", "a"},
		{"multi letter position", "tangle:///lib.rs?at=za", "lib.rs", "za"},
		{"surrounding whitespace", "  tangle:///main.rs  ", "main.rs", "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, ok, err := ParseAddress(tt.info)
			if err != nil {
				t.Fatalf("ParseAddress(%q) error: %v", tt.info, err)
			}
			if !ok {
				t.Fatalf("ParseAddress(%q) not recognized as tangle address", tt.info)
			}
			if addr.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", addr.Path, tt.wantPath)
			}
			if addr.Pos.String() != tt.wantPos {
				t.Errorf("Pos = %q, want %q", addr.Pos, tt.wantPos)
			}
		})
	}
}

func TestParseAddressSkipsNonTangle(t *testing.T) {
	tests := []struct {
		name string
		info string
	}{
		{"empty", ""},
		{"plain language", "rust"},
		{"language with options", "go {linenos=true}"},
		{"http url", "http://example.com/main.rs"},
		{"other scheme", "file:///main.rs"},
		{"tangle prefix different scheme", "tangleish:/main.rs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := ParseAddress(tt.info)
			if err != nil {
				t.Fatalf("ParseAddress(%q) error: %v, want silent skip", tt.info, err)
			}
			if ok {
				t.Errorf("ParseAddress(%q) recognized as tangle address, want skip", tt.info)
			}
		})
	}
}

func TestParseAddressErrors(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		wantCode errors.Code
	}{
		{"authority host", "tangle://main.rs", errors.ErrCodeInvalidAddress},
		{"authority with path", "tangle://host/main.rs", errors.ErrCodeInvalidAddress},
		{"userinfo", "tangle://user@/main.rs", errors.ErrCodeInvalidAddress},
		{"missing path", "tangle:", errors.ErrCodeInvalidAddress},
		{"empty path", "tangle:///", errors.ErrCodeInvalidAddress},
		{"double leading slash", "tangle:////main.rs", errors.ErrCodeInvalidAddress},
		{"fragment", "tangle:///main.rs#top", errors.ErrCodeInvalidAddress},
		{"unknown query param", "tangle:///main.rs?pos=a", errors.ErrCodeInvalidAddress},
		{"repeated at param", "tangle:///main.rs?at=a&at=b", errors.ErrCodeInvalidAddress},
		{"traversal path", "tangle:///../escape.rs", errors.ErrCodeInvalidPath},

		{"empty position", "tangle:///main.rs?at=", errors.ErrCodeInvalidPosition},
		{"digit position", "tangle:///main.rs?at=10", errors.ErrCodeInvalidPosition},
		{"uppercase position", "tangle:///main.rs?at=A", errors.ErrCodeInvalidPosition},
		{"sentinel position", "tangle:///main.rs?at=m", errors.ErrCodeInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAddress(tt.info)
			if err == nil {
				t.Fatalf("ParseAddress(%q) succeeded, want error", tt.info)
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("ParseAddress(%q) code = %v, want %v (err: %v)", tt.info, errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}
