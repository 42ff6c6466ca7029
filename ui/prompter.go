package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"secret-santa/domain"
	"secret-santa/errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"
)

// Prompter asks the operator questions on out and reads answers from in.
// When in is a terminal, secrets are read without echo.
type Prompter struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret func() (string, error)
	validator  *validator.Validate
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:        bufio.NewReader(in),
		out:       out,
		validator: validator.New(),
	}
	p.readSecret = p.readLine
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		p.readSecret = func() (string, error) {
			secret, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return strings.TrimSpace(string(secret)), err
		}
	}
	return p
}

// Ask prints label and returns the trimmed answer, or def when empty.
func (p *Prompter) Ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s (default: %s): ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskSecret reads an answer that is never echoed back.
func (p *Prompter) AskSecret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readSecret()
}

// Credentials collects the relay configuration, starting from defaults.
func (p *Prompter) Credentials(defaults domain.Credentials) (domain.Credentials, error) {
	fmt.Fprintln(p.out, "\n📧 Email Configuration:")
	sender, err := p.Ask("Enter sender email address", defaults.Sender)
	if err != nil {
		return domain.Credentials{}, err
	}
	secret, err := p.AskSecret("Enter sender email password/app password")
	if err != nil {
		return domain.Credentials{}, err
	}
	host, err := p.Ask("Enter SMTP server", defaults.Host)
	if err != nil {
		return domain.Credentials{}, err
	}
	rawPort, err := p.Ask("Enter SMTP port", portString(defaults.Port))
	if err != nil {
		return domain.Credentials{}, err
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: port %q", errors.ErrInvalidCredentials, rawPort)
	}

	credentials := domain.Credentials{Sender: sender, Secret: secret, Host: host, Port: port}
	if err := p.validator.Struct(credentials); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}
	return credentials, nil
}

// Confirm succeeds only when the operator types expected exactly.
func (p *Prompter) Confirm(label, expected string) (bool, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return answer == expected, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func portString(port int) string {
	if port == 0 {
		return ""
	}
	return strconv.Itoa(port)
}
