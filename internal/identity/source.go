package identity

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TokenSource obtains a provider access token from the user. An empty
// token means the user abandoned the flow.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// test seams
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// TerminalTokenSource asks for a token on the terminal. Input is not echoed
// when stdin is a TTY.
type TerminalTokenSource struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

func NewTerminalTokenSource(in *bufio.Reader, out io.Writer) *TerminalTokenSource {
	return &TerminalTokenSource{in: in, out: out, fd: int(os.Stdin.Fd())}
}

func (s *TerminalTokenSource) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(s.out, "Paste Facebook access token (empty to cancel): "); err != nil {
		return "", err
	}

	if isTerminal(s.fd) {
		b, err := readPassword(s.fd)
		fmt.Fprintln(s.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
