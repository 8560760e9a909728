package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)

	assert.Equal(t, "hello", Decode(data))
}

func TestDecodePlainText(t *testing.T) {
	assert.Equal(t, "hello\r\nworld", Decode([]byte("hello\r\nworld")))
}

func TestEncoderKnownNames(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF-8", "iso-8859-1", "windows-1252"} {
		enc, err := Encoder(name)
		require.NoError(t, err, name)
		require.NotNil(t, enc, name)
	}
}

func TestEncoderUnknownName(t *testing.T) {
	_, err := Encoder("definitely-not-an-encoding")
	assert.Error(t, err)
}

func TestEncodeUTF8RoundTrip(t *testing.T) {
	enc, err := Encoder("utf-8")
	require.NoError(t, err)

	data, err := Encode(enc, "héllo\n")
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo\n"), data)
}

func TestEncodeLatin1(t *testing.T) {
	enc, err := Encoder("iso-8859-1")
	require.NoError(t, err)

	data, err := Encode(enc, "é")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE9}, data)
}

func TestEncodeNilEncoding(t *testing.T) {
	data, err := Encode(nil, "raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), data)
}
