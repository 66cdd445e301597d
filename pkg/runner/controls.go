package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Control commands understood by Controls. Each command is one input line.
const (
	CmdToggle = "p"
	CmdResume = "r"
	CmdStep   = "s"
	CmdFaster = "+"
	CmdSlower = "-"
	CmdQuit   = "q"
)

// Controls binds line-based keyboard input to a Player.
type Controls struct {
	Reader *bufio.Reader
	// Writer receives short feedback lines; nil disables feedback.
	Writer io.Writer
	Player *Player
	// Quit is called when the quit command is read, typically a context cancel.
	Quit func()

	inputChan chan inputResult
	done      chan struct{}
	exited    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewControls creates controls reading commands from r.
func NewControls(r io.Reader, w io.Writer, p *Player, quit func()) *Controls {
	return &Controls{
		Reader: bufio.NewReader(r),
		Writer: w,
		Player: p,
		Quit:   quit,
	}
}

func (c *Controls) initPump() {
	c.startOnce.Do(func() {
		c.inputChan = make(chan inputResult)
		c.done = make(chan struct{})
		c.exited = make(chan struct{})
		go c.pump()
	})
}

// pump reads lines until EOF or until Run has returned. A read already
// blocked on the reader finishes only when the reader yields.
func (c *Controls) pump() {
	defer close(c.exited)
	defer close(c.inputChan)
	for {
		text, err := c.Reader.ReadString('\n')
		if text != "" && !c.send(inputResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				c.send(inputResult{err: err})
			}
			return
		}
	}
}

func (c *Controls) send(res inputResult) bool {
	select {
	case c.inputChan <- res:
		return true
	case <-c.done:
		return false
	}
}

func (c *Controls) stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Run applies commands until ctx is done, input ends or quit is requested.
func (c *Controls) Run(ctx context.Context) error {
	c.initPump()
	defer c.stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case res, ok := <-c.inputChan:
			if !ok {
				return nil
			}
			if res.err != nil {
				return fmt.Errorf("read controls: %w", res.err)
			}
			msg, quit := c.Apply(res.text)
			if msg != "" && c.Writer != nil {
				fmt.Fprintln(c.Writer, msg)
			}
			if quit {
				if c.Quit != nil {
					c.Quit()
				}
				return nil
			}
		}
	}
}

// Apply executes a single command line and returns a feedback message.
// An empty line toggles pause like CmdToggle.
func (c *Controls) Apply(line string) (msg string, quit bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", CmdToggle, "pause":
		if c.Player.Toggle() {
			return fmt.Sprintf("paused at frame %d", c.Player.Cursor()), false
		}
		return "playing", false
	case CmdResume, "resume":
		c.Player.Resume()
		return "playing", false
	case CmdStep, "step", "n":
		c.Player.Step()
		return "", false
	case CmdFaster, "=", "faster":
		return fmt.Sprintf("speed: %s", c.Player.Faster()), false
	case CmdSlower, "_", "slower":
		return fmt.Sprintf("speed: %s", c.Player.Slower()), false
	case CmdQuit, "quit", "exit":
		return "stopping", true
	default:
		return fmt.Sprintf("unknown command %q (p pause, r resume, s step, + faster, - slower, q quit)", strings.TrimSpace(line)), false
	}
}
