// Package console is the menu-driven request/response loop: it reads
// single-line commands from stdin, dispatches to the store, renders
// results, and persists after every mutating flow.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avdeev/taskdeck/internal/storage"
	"github.com/avdeev/taskdeck/internal/store"
)

// Console drives the interactive session. One instance per run.
type Console struct {
	store   *store.Store
	gateway *storage.Gateway
	in      *bufio.Scanner
	out     io.Writer
}

// New wires a console over the given store and gateway. Input and
// output are injectable for tests.
func New(s *store.Store, g *storage.Gateway, in io.Reader, out io.Writer) *Console {
	return &Console{
		store:   s,
		gateway: g,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the user exits or input ends. The loop itself never
// fails: every store error is rendered and the menu comes back.
func (c *Console) Run() error {
	for {
		c.printf("\n%staskdeck%s — %d active, %d deleted\n",
			colorBold, colorReset, len(c.store.ListActive()), len(c.store.ListDeleted()))
		c.printf(" 1) View tasks\n")
		c.printf(" 2) Search by title\n")
		c.printf(" 3) Add task\n")
		c.printf(" 4) Statistics\n")
		c.printf(" 5) Critical tasks\n")
		c.printf(" 6) Deleted tasks\n")
		c.printf(" 0) Exit\n")

		choice, ok := c.readChoice("> ")
		if !ok {
			return nil
		}

		switch choice {
		case 0:
			return nil
		case 1:
			c.viewTasks()
		case 2:
			c.searchTasks()
		case 3:
			c.addTask()
		case 4:
			c.showStatistics()
		case 5:
			c.showCritical()
		case 6:
			c.viewDeleted()
		default:
			// Out-of-range or non-numeric input is silently ignored.
		}
	}
}

// persist saves the full snapshot after a mutation. Failures are
// visible but never fatal; the session continues.
func (c *Console) persist() {
	if err := c.gateway.Save(c.store.All()); err != nil {
		c.printf("%swarning: could not save tasks: %v%s\n", colorRed, err, colorReset)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readLine prompts and reads one trimmed line. ok is false once input
// is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readChoice reads a numeric menu selection. Non-numeric input yields
// -1, which no menu handles, so it falls through silently.
func (c *Console) readChoice(prompt string) (int, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, true
	}
	return n, true
}
