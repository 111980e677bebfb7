package pairing

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPairingWritesQRAndExpiry(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out)

	err := renderer.RenderPairing("2@abc,def,ghi", 60*time.Second)
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "Linked devices")
	assert.Contains(t, rendered, "The code expires in 60 seconds.")
	assert.Greater(t, bytes.Count(out.Bytes(), []byte("\n")), 10)
}

func TestRenderPairingRejectsEmptyCode(t *testing.T) {
	var out bytes.Buffer

	err := NewRenderer(&out).RenderPairing("  ", time.Minute)
	assert.ErrorIs(t, err, ErrEmptyCode)
	assert.Zero(t, out.Len())
}

func TestExpiryText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		validity time.Duration
		want     string
	}{
		{validity: time.Second, want: "The code expires in 1 second."},
		{validity: 1500 * time.Millisecond, want: "The code expires in 2 seconds."},
		{validity: 0, want: "The code expires soon, a new one will be shown automatically."},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, expiryText(tc.validity))
	}
}
