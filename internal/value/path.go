package value

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Path is a decoded path value. Lookup never resolves anything: the value
// is kept verbatim, and a leading "~" or "~user" prefix is only expanded by
// an explicit Interpolate call.
type Path struct {
	raw Raw
}

// DecodePath wraps a normalized value as a path, verbatim.
func DecodePath(raw []byte) (Path, error) {
	return Path{raw: Borrowed(raw)}, nil
}

// PathFrom wraps an already normalized Raw as a path.
func PathFrom(r Raw) Path {
	return Path{raw: r}
}

// Raw returns the underlying value.
func (p Path) Raw() Raw { return p.raw }

func (p Path) String() string { return p.raw.String() }

// InterpolateContext supplies everything interpolation may need. Nothing is
// read from the environment or the filesystem; callers decide what "~"
// means here.
type InterpolateContext struct {
	// HomeDir is the base directory a leading "~" resolves against.
	HomeDir string

	// LookupUser resolves the home directory for a "~user" prefix.
	// Optional; interpolating "~user" without it is an error.
	LookupUser func(user string) (string, error)
}

// ErrNoHomeDir is returned when a path starts with "~" but the context has
// no base directory to resolve it against.
var ErrNoHomeDir = errors.New("value: no base directory for ~ interpolation")

// ErrNoUserLookup is returned when a path starts with "~user" and the
// context has no user lookup function.
var ErrNoUserLookup = errors.New("value: no lookup function for ~user interpolation")

// Interpolate resolves a leading "~" or "~user" prefix into a concrete
// path. Paths without such a prefix are returned unchanged.
func (p Path) Interpolate(ctx InterpolateContext) (string, error) {
	s := p.String()
	if !strings.HasPrefix(s, "~") {
		return s, nil
	}
	if s == "~" || strings.HasPrefix(s, "~/") {
		if ctx.HomeDir == "" {
			return "", ErrNoHomeDir
		}
		return filepath.Join(ctx.HomeDir, strings.TrimPrefix(s[1:], "/")), nil
	}

	user, rest := s[1:], ""
	if i := strings.IndexByte(user, '/'); i >= 0 {
		user, rest = user[:i], user[i+1:]
	}
	if ctx.LookupUser == nil {
		return "", ErrNoUserLookup
	}
	home, err := ctx.LookupUser(user)
	if err != nil {
		return "", fmt.Errorf("resolve home of %q: %w", user, err)
	}
	return filepath.Join(home, rest), nil
}
