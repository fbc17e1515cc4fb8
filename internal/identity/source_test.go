package identity

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	oldIs, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldIs, oldRead })
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
}

func TestTerminalTokenSource_Piped(t *testing.T) {
	withTerminal(t, false, nil, nil)
	var out bytes.Buffer
	s := NewTerminalTokenSource(bufio.NewReader(strings.NewReader("  abc  \n")), &out)

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
	assert.Contains(t, out.String(), "access token")
}

func TestTerminalTokenSource_EOF(t *testing.T) {
	withTerminal(t, false, nil, nil)
	s := NewTerminalTokenSource(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestTerminalTokenSource_TTY(t *testing.T) {
	withTerminal(t, true, []byte("secret\n"), nil)
	s := NewTerminalTokenSource(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", tok)
}

func TestTerminalTokenSource_TTYError(t *testing.T) {
	withTerminal(t, true, nil, errors.New("no tty"))
	s := NewTerminalTokenSource(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})

	_, err := s.Token(context.Background())
	require.ErrorContains(t, err, "no tty")
}

func TestTerminalTokenSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewTerminalTokenSource(bufio.NewReader(strings.NewReader("abc\n")), &bytes.Buffer{})

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
