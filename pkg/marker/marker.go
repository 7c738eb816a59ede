// Package marker implements extraction, decoding and encoding of embed
// markers: delimited substrings of the form {Q{identifier|name=value|token}Q}
// placed in rendered page text to request an embedded question.
package marker

import (
	"regexp"
	"sort"
	"strings"
)

// Default delimiters used by the wire format.
const (
	DefaultPrefix = "{Q{"
	DefaultSuffix = "}Q}"
)

// fieldSeparator splits a marker's interior into identifier, option
// segments and the trailing signature token.
const fieldSeparator = "|"

// Options holds the name=value pairs carried by a marker.
type Options map[string]string

// Marker is the decoded form of one embed marker. Markers are ephemeral
// values; they exist only for the duration of one substitution.
type Marker struct {
	ID        string
	Options   Options
	Signature string
}

// Match is one delimited span found in a text. Start and End are byte
// offsets of the full span, delimiters included, so a caller can splice a
// replacement in place. Interior is the text between the delimiters.
type Match struct {
	Interior string
	Start    int
	End      int
}

// IDValidator reports whether a candidate identifier satisfies the host's
// identifier grammar. The grammar itself is owned by the host.
type IDValidator func(id string) bool

// Pattern builds the scan pattern for a delimiter pair. Both delimiters are
// escaped, so regexp metacharacters in them match literally. The interior
// group is non-greedy and (?s) lets markers span lines, so adjacent markers
// are matched independently rather than merged into one span.
func Pattern(prefix, suffix string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(prefix) + `(.*?)` + regexp.QuoteMeta(suffix))
}

// Extract returns every non-overlapping delimited span in text, in order.
// Text without a delimiter pair yields an empty slice.
func Extract(text, prefix, suffix string) []Match {
	idxs := Pattern(prefix, suffix).FindAllStringSubmatchIndex(text, -1)
	if len(idxs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(idxs))
	for _, idx := range idxs {
		matches = append(matches, Match{
			Interior: text[idx[2]:idx[3]],
			Start:    idx[0],
			End:      idx[1],
		})
	}
	return matches
}

// ReplaceAll substitutes every delimited span in text. fn receives the
// interior of one marker and returns the replacement for the whole span.
// Text without a delimiter pair is returned unchanged.
func ReplaceAll(text, prefix, suffix string, fn func(interior string) string) string {
	return Pattern(prefix, suffix).ReplaceAllStringFunc(text, func(span string) string {
		return fn(span[len(prefix) : len(span)-len(suffix)])
	})
}

// Decode parses one marker's interior text. The first segment is the
// identifier, the last is the signature token, and every segment between
// them must be a single name=value pair. A segment without exactly one '='
// fails the whole decode; no partial option set is ever produced. When
// isValidID is non-nil the identifier must satisfy it.
func Decode(interior string, isValidID IDValidator) (Marker, error) {
	parts := strings.Split(interior, fieldSeparator)
	if len(parts) < 2 {
		return Marker{}, NewDecodeError(interior, "marker needs an identifier and a signature", ErrTooFewParts)
	}

	m := Marker{
		ID:        parts[0],
		Options:   Options{},
		Signature: parts[len(parts)-1],
	}

	if isValidID != nil && !isValidID(m.ID) {
		return Marker{}, NewDecodeError(m.ID, "identifier does not satisfy the host grammar", ErrInvalidIdentifier)
	}

	for _, seg := range parts[1 : len(parts)-1] {
		if strings.Count(seg, "=") != 1 {
			return Marker{}, NewDecodeError(seg, "option segment must be a single name=value pair", ErrMalformedOption)
		}
		name, value, _ := strings.Cut(seg, "=")
		m.Options[name] = value
	}

	return m, nil
}

// Encode builds the wire form of a marker using the default delimiters.
// Options are emitted in sorted name order so the output is deterministic.
func Encode(id string, opts Options, sig string) string {
	return DefaultPrefix + EncodeInterior(id, opts, sig) + DefaultSuffix
}

// EncodeInterior builds the interior of a marker without delimiters, for
// callers using a custom delimiter pair.
func EncodeInterior(id string, opts Options, sig string) string {
	segs := make([]string, 0, len(opts)+2)
	segs = append(segs, id)

	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		segs = append(segs, name+"="+opts[name])
	}

	segs = append(segs, sig)
	return strings.Join(segs, fieldSeparator)
}
