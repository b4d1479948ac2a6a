package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, native bool, nativeErr error, osc bool) (*bytes.Buffer, *string) {
	t.Helper()
	origWrite, origNative, origOut, origOSC := writeNative, nativeOK, osc52Out, osc52OK
	t.Cleanup(func() {
		writeNative, nativeOK, osc52Out, osc52OK = origWrite, origNative, origOut, origOSC
	})

	var got string
	var buf bytes.Buffer
	writeNative = func(s string) error {
		got = s
		return nativeErr
	}
	nativeOK = func() bool { return native }
	osc52Out = io.Writer(&buf)
	osc52OK = func() bool { return osc }
	return &buf, &got
}

func TestCopy_Native(t *testing.T) {
	t.Setenv("TMUX", "")
	buf, got := stub(t, true, nil, true)

	method, err := Copy("Arsenal")
	require.NoError(t, err)
	assert.Equal(t, MethodNative, method)
	assert.Equal(t, "Arsenal", *got)
	assert.Zero(t, buf.Len())
}

func TestCopy_FallsBackToOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	buf, _ := stub(t, true, errors.New("no xclip"), true)

	method, err := Copy("Bayern Munich")
	require.NoError(t, err)
	assert.Equal(t, MethodOSC52, method)
	assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("Bayern Munich")))
	assert.Contains(t, buf.String(), "\x1b]52;c;")
}

func TestCopy_Unavailable(t *testing.T) {
	buf, _ := stub(t, false, nil, false)

	_, err := Copy("Liverpool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clipboard unavailable")
	assert.Zero(t, buf.Len())
}
