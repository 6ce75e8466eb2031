package flash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luisfp0/online-course-products/pkg/view"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec([]byte("secret"), "flash", false)

	encoded, err := codec.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Login successful."})
	require.NoError(t, err)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, decoded.Kind)
	assert.Equal(t, "Login successful.", decoded.Message)
}

func TestCodecRejectsTamperedPayload(t *testing.T) {
	codec := NewCodec([]byte("secret"), "flash", false)

	encoded, err := codec.Encode(view.Flash{Kind: view.FlashError, Message: "genuine"})
	require.NoError(t, err)

	other, err := codec.Encode(view.Flash{Kind: view.FlashError, Message: "forged"})
	require.NoError(t, err)

	forged := strings.Split(other, ".")[0] + "." + strings.Split(encoded, ".")[1]
	_, err = codec.Decode(forged)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	a := NewCodec([]byte("secret-a"), "flash", false)
	b := NewCodec([]byte("secret-b"), "flash", false)

	encoded, err := a.Encode(view.Flash{Kind: view.FlashInfo, Message: "hello"})
	require.NoError(t, err)

	_, err = b.Decode(encoded)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec := NewCodec([]byte("secret"), "flash", false)

	for _, v := range []string{"", "no-dot", "a.b.c", "!!!.???"} {
		_, err := codec.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, "value %q", v)
	}
}

func TestCodecRejectsEmptyMessage(t *testing.T) {
	codec := NewCodec([]byte("secret"), "flash", false)

	encoded, err := codec.Encode(view.Flash{Kind: view.FlashInfo, Message: "   "})
	require.NoError(t, err)

	_, err = codec.Decode(encoded)
	assert.ErrorIs(t, err, ErrInvalid)
}
