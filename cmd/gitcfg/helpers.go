package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gitcfg/internal/document"
	"github.com/raphi011/gitcfg/internal/format"
	"github.com/raphi011/gitcfg/internal/log"
	"github.com/raphi011/gitcfg/internal/value"
)

// target is a parsed dotted lookup name.
type target struct {
	Section    string
	Subsection string
	Key        string
}

func (t target) String() string {
	return format.DisplayKey(t.Section, t.Subsection, t.Key)
}

// parseTarget splits git's dotted notation: the first dot ends the section,
// the last dot starts the key, and anything between is the subsection
// (which may itself contain dots).
func parseTarget(s string) (target, error) {
	first := strings.IndexByte(s, '.')
	last := strings.LastIndexByte(s, '.')
	if first < 0 || first == 0 || last == len(s)-1 {
		return target{}, fmt.Errorf("invalid key %q: expected section[.subsection].key", s)
	}
	t := target{
		Section: s[:first],
		Key:     s[last+1:],
	}
	if first != last {
		t.Subsection = s[first+1 : last]
	}
	if t.Key == "" {
		return target{}, fmt.Errorf("invalid key %q: empty key name", s)
	}
	return t, nil
}

// configFile resolves the file to query: --file beats the tool config's
// default_file, which defaults to .git/config.
func configFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.DefaultFile
}

// loadDocument reads and parses a config file. File access happens here in
// the CLI; the document core never touches the filesystem.
func loadDocument(ctx context.Context, path string) (*document.Document, error) {
	logger := log.FromContext(ctx)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Verbosef("parsed %s: %d sections\n", path, len(doc.Sections()))
	return doc, nil
}

// newRenderer builds a renderer honoring --color, GITCFG_COLOR and the
// tool config, in that order.
func newRenderer() *format.Renderer {
	mode := colorFlag
	if mode == "" {
		mode = cfg.ColorMode()
	}
	return format.NewRenderer(mode)
}

// entryText renders an entry's value for display. Implicit entries read as
// "true", matching how git reports bare keys.
func entryText(e document.Entry) (string, error) {
	if e.Implicit() {
		return "true", nil
	}
	raw, err := value.Normalize(e.Raw())
	if err != nil {
		return "", err
	}
	return raw.String(), nil
}

// suggestTargets returns the dotted names most similar to the missed
// lookup, best match first.
func suggestTargets(doc *document.Document, missed string, limit int) []string {
	var names []string
	seen := map[string]bool{}
	for _, s := range doc.Sections() {
		for _, e := range s.Entries {
			name := format.DisplayKey(s.Name, s.Subsection, e.Key)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	matches := fuzzy.Find(missed, names)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, names[m.Index])
	}
	return out
}
