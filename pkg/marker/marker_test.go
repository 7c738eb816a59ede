package marker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_NoDelimiters(t *testing.T) {
	matches := Extract("plain page text with no markers", DefaultPrefix, DefaultSuffix)
	assert.Empty(t, matches)
}

func TestExtract_SingleMarker(t *testing.T) {
	text := "before {Q{a|TOK}Q} after"
	matches := Extract(text, DefaultPrefix, DefaultSuffix)

	require.Len(t, matches, 1)
	assert.Equal(t, "a|TOK", matches[0].Interior)
	assert.Equal(t, "{Q{a|TOK}Q}", text[matches[0].Start:matches[0].End])
}

func TestExtract_AdjacentMarkersShortestMatch(t *testing.T) {
	// A marker must not swallow content up to the last suffix in the text.
	text := "{Q{a|T1}Q} middle {Q{b|T2}Q}"
	matches := Extract(text, DefaultPrefix, DefaultSuffix)

	require.Len(t, matches, 2)
	assert.Equal(t, "a|T1", matches[0].Interior)
	assert.Equal(t, "b|T2", matches[1].Interior)
}

func TestExtract_MultilineInterior(t *testing.T) {
	text := "{Q{a|b=1\n2|TOK}Q}"
	matches := Extract(text, DefaultPrefix, DefaultSuffix)

	require.Len(t, matches, 1)
	assert.Equal(t, "a|b=1\n2|TOK", matches[0].Interior)
}

func TestExtract_DelimitersWithRegexMetacharacters(t *testing.T) {
	matches := Extract("x [[a|TOK]] y", "[[", "]]")

	require.Len(t, matches, 1)
	assert.Equal(t, "a|TOK", matches[0].Interior)
}

func TestReplaceAll_NoMarkersUnchanged(t *testing.T) {
	text := "nothing to see here"
	out := ReplaceAll(text, DefaultPrefix, DefaultSuffix, func(string) string {
		t.Fatal("callback must not run without a marker")
		return ""
	})
	assert.Equal(t, text, out)
}

func TestReplaceAll_SubstitutesEachMarkerIndependently(t *testing.T) {
	text := "a {Q{one}Q} b {Q{two}Q} c"
	out := ReplaceAll(text, DefaultPrefix, DefaultSuffix, func(interior string) string {
		return "<" + strings.ToUpper(interior) + ">"
	})
	assert.Equal(t, "a <ONE> b <TWO> c", out)
}

func TestDecode_WithOptions(t *testing.T) {
	m, err := Decode("a|b=1|c=2|TOK", nil)

	require.NoError(t, err)
	assert.Equal(t, "a", m.ID)
	assert.Equal(t, Options{"b": "1", "c": "2"}, m.Options)
	assert.Equal(t, "TOK", m.Signature)
}

func TestDecode_NoOptions(t *testing.T) {
	m, err := Decode("a|TOK", nil)

	require.NoError(t, err)
	assert.Equal(t, "a", m.ID)
	assert.Empty(t, m.Options)
	assert.Equal(t, "TOK", m.Signature)
}

func TestDecode_SingleSegmentFails(t *testing.T) {
	_, err := Decode("justonesegment", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooFewParts)
}

func TestDecode_OptionWithoutEqualsFails(t *testing.T) {
	m, err := Decode("a|bad|TOK", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedOption)
	assert.Empty(t, m.Options, "no partial option set on failure")
}

func TestDecode_OptionWithTwoEqualsFails(t *testing.T) {
	_, err := Decode("a|b=1=2|TOK", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedOption)
}

func TestDecode_FirstBadOptionStopsDecoding(t *testing.T) {
	_, err := Decode("a|b=1|bad|c=2|TOK", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedOption)
}

func TestDecode_IdentifierGrammarEnforced(t *testing.T) {
	onlyLetters := func(id string) bool {
		return !strings.ContainsAny(id, "0123456789")
	}

	_, err := Decode("abc1|TOK", onlyLetters)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	m, err := Decode("abc|TOK", onlyLetters)
	require.NoError(t, err)
	assert.Equal(t, "abc", m.ID)
}

func TestDecode_ErrorCarriesOffendingSegment(t *testing.T) {
	_, err := Decode("a|oops|TOK", nil)

	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "oops", decodeErr.Segment)
}

func TestEncode_RoundTrip(t *testing.T) {
	opts := Options{"marks": "2", "behaviour": "interactive"}
	wire := Encode("cat/q1", opts, "TOK")

	matches := Extract(wire, DefaultPrefix, DefaultSuffix)
	require.Len(t, matches, 1)

	m, err := Decode(matches[0].Interior, nil)
	require.NoError(t, err)
	assert.Equal(t, "cat/q1", m.ID)
	assert.Equal(t, opts, m.Options)
	assert.Equal(t, "TOK", m.Signature)
}

func TestEncode_DeterministicOptionOrder(t *testing.T) {
	opts := Options{"z": "1", "a": "2", "m": "3"}
	assert.Equal(t, Encode("id", opts, "TOK"), Encode("id", opts, "TOK"))
	assert.Equal(t, "{Q{id|a=2|m=3|z=1|TOK}Q}", Encode("id", opts, "TOK"))
}
