package fixerrors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagAccumulatesInOrder(t *testing.T) {
	var b Bag
	assert.True(t, b.Empty())

	b.Add(UnknownTagErr("9999"))
	b.Add(RequiredMissingErr(Header, "MsgType"))

	require.False(t, b.Empty())
	require.Len(t, b.Errors(), 2)
	assert.Equal(t, KindUnknownTag, b.Errors()[0].Kind)
	assert.Equal(t, KindRequiredMissing, b.Errors()[1].Kind)
	assert.True(t, b.Has(KindRequiredMissing))
	assert.False(t, b.Has(KindChecksumMalformed))
}

func TestErrorUnwrapsToSentinel(t *testing.T) {
	err := UnknownMsgTypeErr("ZZ")
	assert.True(t, stderrors.Is(err, ErrUnknownMsgType))
	assert.False(t, stderrors.Is(err, ErrUnknownTag))
}

func TestBagErrorJoinsMessages(t *testing.T) {
	var b Bag
	b.Add(BodyLengthMissingErr())
	b.Add(ChecksumMalformedErr())
	assert.Contains(t, b.Error(), "body length")
	assert.Contains(t, b.Error(), "checksum")
}
