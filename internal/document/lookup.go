package document

// Lookup resolves a single value. All sections matching the
// case-insensitive name and byte-exact subsection form one logical group:
// the most recently declared section is scanned first (its entries last to
// first), and a per-section miss falls through to the previous matching
// section. An earlier repetition of "[core]" therefore still answers for
// keys a later repetition omits.
func (d *Document) Lookup(section, subsection, key string) (Entry, bool) {
	for i := len(d.sections) - 1; i >= 0; i-- {
		s := d.sections[i]
		if !s.matches(section, subsection) {
			continue
		}
		for j := len(s.Entries) - 1; j >= 0; j-- {
			if foldEq(s.Entries[j].Key, key) {
				return s.Entries[j], true
			}
		}
	}
	return Entry{}, false
}

// LookupAll returns every entry matching (section, subsection, key) across
// all matching sections, in declaration order. Keys differing only in case
// all match.
func (d *Document) LookupAll(section, subsection, key string) []Entry {
	var out []Entry
	for _, s := range d.sections {
		if !s.matches(section, subsection) {
			continue
		}
		for _, e := range s.Entries {
			if foldEq(e.Key, key) {
				out = append(out, e)
			}
		}
	}
	return out
}

// foldEq compares two names under ASCII case folding without allocating.
// Stored names keep their original casing.
func foldEq(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
