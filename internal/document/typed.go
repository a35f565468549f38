package document

import (
	"errors"

	"github.com/raphi011/gitcfg/internal/value"
)

// ErrNotFound signals that no section or entry matched a lookup. It is an
// absence marker, not a failure: callers typically substitute a default.
var ErrNotFound = errors.New("document: value not found")

// Boolean resolves and decodes a boolean. A bare key decodes to the
// implicit true form.
func (d *Document) Boolean(section, subsection, key string) (value.Boolean, error) {
	e, ok := d.Lookup(section, subsection, key)
	if !ok {
		return value.Boolean{}, ErrNotFound
	}
	if e.Implicit() {
		return value.DecodeBoolean(nil)
	}
	raw, err := value.Normalize(e.Raw())
	if err != nil {
		return value.Boolean{}, err
	}
	return value.DecodeBoolean(raw.Bytes())
}

// Integer resolves and decodes an integer with its unmultiplied scale
// suffix.
func (d *Document) Integer(section, subsection, key string) (value.Integer, error) {
	raw, err := d.RawValue(section, subsection, key)
	if err != nil {
		return value.Integer{}, err
	}
	return value.DecodeInteger(raw.Bytes())
}

// Color resolves and decodes a color.
func (d *Document) Color(section, subsection, key string) (value.Color, error) {
	raw, err := d.RawValue(section, subsection, key)
	if err != nil {
		return value.Color{}, err
	}
	return value.DecodeColor(raw.Bytes())
}

// Path resolves a path verbatim; no interpolation happens here.
func (d *Document) Path(section, subsection, key string) (value.Path, error) {
	raw, err := d.RawValue(section, subsection, key)
	if err != nil {
		return value.Path{}, err
	}
	return value.PathFrom(raw), nil
}

// RawValue resolves a single value and normalizes it (unquoting, escapes,
// continuation joining). The result borrows from the document buffer when
// no transformation was needed. An implicit entry yields an empty borrowed
// value; use Lookup to distinguish it.
func (d *Document) RawValue(section, subsection, key string) (value.Raw, error) {
	e, ok := d.Lookup(section, subsection, key)
	if !ok {
		return value.Raw{}, ErrNotFound
	}
	return value.Normalize(e.Raw())
}

// Strings resolves every matching value in declaration order, normalized.
func (d *Document) Strings(section, subsection, key string) ([]value.Raw, error) {
	entries := d.LookupAll(section, subsection, key)
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	out := make([]value.Raw, 0, len(entries))
	for _, e := range entries {
		raw, err := value.Normalize(e.Raw())
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}
