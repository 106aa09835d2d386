package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	raw := []byte("8=FIX.4.4|9=5|35=0|10=000|")
	tokens, malformed := Tokenize(raw, '|')

	require.Empty(t, malformed)
	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Tag: "8", Value: "FIX.4.4"}, tokens[0])
	assert.Equal(t, Token{Tag: "10", Value: "000"}, tokens[3])
}

func TestTokenizeValueContainingEquals(t *testing.T) {
	tokens, malformed := Tokenize([]byte("58=a=b=c|"), '|')
	require.Empty(t, malformed)
	require.Len(t, tokens, 1)
	assert.Equal(t, "a=b=c", tokens[0].Value)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, malformed := Tokenize([]byte(""), '|')
	assert.Empty(t, tokens)
	assert.Empty(t, malformed)
}

func TestTokenizeMalformedTokenNoEquals(t *testing.T) {
	tokens, malformed := Tokenize([]byte("8=FIX.4.4|garbage|10=000|"), '|')
	require.Len(t, malformed, 1)
	assert.Equal(t, "garbage", malformed[0].Raw)
	require.Len(t, tokens, 2)
}

func TestTokenizeMalformedTokenEmptyTag(t *testing.T) {
	tokens, malformed := Tokenize([]byte("=value|8=FIX.4.4|"), '|')
	require.Len(t, malformed, 1)
	assert.Equal(t, "=value", malformed[0].Raw)
	require.Len(t, tokens, 1)
}

func TestTokenizeDoesNotDedupeDuplicateTags(t *testing.T) {
	tokens, _ := Tokenize([]byte("58=one|58=two|"), '|')
	require.Len(t, tokens, 2)
	assert.Equal(t, "one", tokens[0].Value)
	assert.Equal(t, "two", tokens[1].Value)
}

func TestTokenizeSOHSeparator(t *testing.T) {
	raw := []byte{'8', '=', '1', 0x01, '9', '=', '2', 0x01}
	tokens, malformed := Tokenize(raw, DefaultSeparator)
	require.Empty(t, malformed)
	require.Len(t, tokens, 2)
}
