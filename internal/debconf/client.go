package debconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Priority is the interruption level attached to a question. Frontends skip
// questions below their configured threshold; critical questions are shown
// even in reduced-verbosity installs.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ErrNoFrontend indicates no debconf frontend is attached to this process.
var ErrNoFrontend = errors.New("debconf: no frontend available")

// Reply codes from debconf-devel(7). Code 30 covers benign refusals such as
// "question skipped"; codes of 100 and above are genuine errors.
const (
	codeSuccess  = 0
	codeEscape   = 1
	codeSkipped  = 30
	codeErrorMin = 100
)

// Client exchanges confmodule commands with a frontend. The transport is
// injected so tests can substitute an in-memory fake for the inherited
// file descriptors.
type Client struct {
	reader *bufio.Reader
	writer io.Writer
}

// New wires a client to the given reply reader and command writer.
func New(r io.Reader, w io.Writer) *Client {
	return &Client{reader: bufio.NewReader(r), writer: w}
}

// FromEnvironment connects to the frontend that invoked this process.
// Frontends advertise themselves through DEBIAN_HAS_FRONTEND; replies
// arrive on stdin and commands go to stdout, or to fd 3 when the frontend
// redirected it via DEBCONF_REDIR.
func FromEnvironment() (*Client, error) {
	if os.Getenv("DEBIAN_HAS_FRONTEND") == "" {
		return nil, ErrNoFrontend
	}
	writer := io.Writer(os.Stdout)
	if os.Getenv("DEBCONF_REDIR") != "" {
		writer = os.NewFile(3, "debconf-redir")
	}
	return New(os.Stdin, writer), nil
}

// Capabilities negotiates capabilities with the frontend. The advisory flow
// requests none, so this only announces the protocol exchange.
func (c *Client) Capabilities() ([]string, error) {
	_, text, err := c.command("CAPB")
	if err != nil {
		return nil, err
	}
	return strings.Fields(text), nil
}

// Input queues a question for display at the given priority. The returned
// bool reports whether the frontend intends to show it; already-seen or
// below-threshold questions are skipped without error.
func (c *Client) Input(priority Priority, question string) (bool, error) {
	code, _, err := c.command("INPUT", string(priority), question)
	if err != nil {
		return false, err
	}
	return code == codeSuccess, nil
}

// Go flushes queued questions to the administrator and blocks until they
// are answered. A backed-up dialog reports code 30, which is not an error.
func (c *Client) Go() error {
	_, _, err := c.command("GO")
	return err
}

// Ask queues the question at the given priority and immediately flushes the
// display. The returned bool reports whether the question was shown.
func (c *Client) Ask(priority Priority, question string) (bool, error) {
	shown, err := c.Input(priority, question)
	if err != nil {
		return false, err
	}
	if err := c.Go(); err != nil {
		return false, err
	}
	return shown, nil
}

// Get returns the stored answer for a question.
func (c *Client) Get(question string) (string, error) {
	_, text, err := c.command("GET", question)
	if err != nil {
		return "", err
	}
	return text, nil
}

// ResetSeen clears a question's seen flag so a later INPUT shows it again.
func (c *Client) ResetSeen(question string) error {
	_, _, err := c.command("FSET", question, "seen", "false")
	return err
}

func (c *Client) command(verb string, args ...string) (int, string, error) {
	line := verb
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	if _, err := fmt.Fprintln(c.writer, line); err != nil {
		return 0, "", fmt.Errorf("debconf: send %s: %w", verb, err)
	}

	reply, err := c.reader.ReadString('\n')
	if err != nil {
		return 0, "", fmt.Errorf("debconf: read %s reply: %w", verb, err)
	}
	reply = strings.TrimRight(reply, "\r\n")

	codeText, text, _ := strings.Cut(reply, " ")
	code, err := strconv.Atoi(codeText)
	if err != nil {
		return 0, "", fmt.Errorf("debconf: malformed %s reply %q", verb, reply)
	}
	if code >= codeErrorMin {
		return code, text, fmt.Errorf("debconf: %s failed: %d %s", verb, code, text)
	}
	return code, text, nil
}
