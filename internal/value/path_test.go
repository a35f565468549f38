package value

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

func TestDecodePathIsVerbatim(t *testing.T) {
	t.Parallel()

	p, err := DecodePath([]byte("~/tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "~/tmp" {
		t.Errorf("DecodePath kept %q, want %q", p.String(), "~/tmp")
	}
	if p.Raw().IsOwned() {
		t.Error("verbatim path should borrow the input")
	}
}

func TestPathInterpolate(t *testing.T) {
	t.Parallel()

	base := filepath.Join("/", "home", "dev")
	lookup := func(user string) (string, error) {
		if user == "alice" {
			return filepath.Join("/", "home", "alice"), nil
		}
		return "", fmt.Errorf("unknown user %q", user)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "tilde slash", path: "~/tmp", want: filepath.Join(base, "tmp")},
		{name: "bare tilde", path: "~", want: base},
		{name: "tilde user", path: "~alice/work", want: filepath.Join("/", "home", "alice", "work")},
		{name: "tilde user without rest", path: "~alice", want: filepath.Join("/", "home", "alice")},
		{name: "absolute untouched", path: "/etc/gitconfig", want: "/etc/gitconfig"},
		{name: "relative untouched", path: "some/dir", want: "some/dir"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := DecodePath([]byte(tt.path))
			if err != nil {
				t.Fatal(err)
			}
			got, err := p.Interpolate(InterpolateContext{HomeDir: base, LookupUser: lookup})
			if err != nil {
				t.Fatalf("Interpolate(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Interpolate(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathInterpolateErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing base directory", func(t *testing.T) {
		t.Parallel()
		p := PathFrom(Borrowed([]byte("~/tmp")))
		_, err := p.Interpolate(InterpolateContext{})
		if !errors.Is(err, ErrNoHomeDir) {
			t.Fatalf("expected ErrNoHomeDir, got %v", err)
		}
	})

	t.Run("missing user lookup", func(t *testing.T) {
		t.Parallel()
		p := PathFrom(Borrowed([]byte("~bob/tmp")))
		_, err := p.Interpolate(InterpolateContext{HomeDir: "/home/dev"})
		if !errors.Is(err, ErrNoUserLookup) {
			t.Fatalf("expected ErrNoUserLookup, got %v", err)
		}
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		t.Parallel()
		p := PathFrom(Borrowed([]byte("~bob/tmp")))
		_, err := p.Interpolate(InterpolateContext{
			HomeDir:    "/home/dev",
			LookupUser: func(string) (string, error) { return "", errors.New("no such user") },
		})
		if err == nil {
			t.Fatal("expected an error from the lookup function")
		}
	})
}
