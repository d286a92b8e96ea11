package textcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_AcceptsEveryByteValue(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}

	text, err := Decode(raw)
	require.NoError(t, err)

	// Every input byte becomes exactly one rune.
	assert.Equal(t, 256, len([]rune(text)))
}

func TestDecode_MapsHighBytesToLatin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1.
	text, err := Decode([]byte{0xE9})
	require.NoError(t, err)
	assert.Equal(t, "é", text)
}

func TestEncode_RoundTripsDecodedText(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}

	text, err := Decode(raw)
	require.NoError(t, err)

	back, err := Encode(text)
	require.NoError(t, err)
	assert.Equal(t, raw, back)
}

func TestEncode_RejectsOutOfRepertoireRunes(t *testing.T) {
	_, err := Encode("日本語")
	assert.Error(t, err)
}

func TestNewWriter_EncodesStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.Write([]byte("café\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, '\n'}, buf.Bytes())
}
