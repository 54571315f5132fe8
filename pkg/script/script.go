// Package script replays modeling sessions from text files.
//
// A script has one command per line; blank lines and text after '#' are
// ignored:
//
//	draw
//	click 0 0
//	click 4 0
//	click 4 4
//	click 0 4
//	click 0.1 0.1
//	expect-mode Selector
//	height 5
//	vertex-edit
//	drag 1 0.5 0
//	save
//	expect-error NoSolid edit   # fails unless edit reports NoSolid
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrSyntax means a line could not be parsed
var ErrSyntax = errors.New("syntax error")

// Command is one parsed line
type Command struct {
	Line int
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// arity maps each command to its number of arguments; -1 means "at least 2"
var arity = map[string]int{
	"draw":         0,
	"click":        2,
	"pick":         2,
	"hover":        2,
	"height":       1,
	"step":         1,
	"edit":         0,
	"move":         2,
	"exit":         0,
	"vertex-edit":  0,
	"drag":         3,
	"save":         0,
	"delete":       0,
	"reset-view":   0,
	"expect-mode":  1,
	"expect-error": -1,
}

// numeric lists the commands whose arguments are all numbers
var numeric = map[string]bool{
	"click": true, "pick": true, "hover": true, "height": true,
	"step": true, "move": true, "drag": true,
}

// Load parses a script file
func Load(path string) ([]Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads commands from r
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		cmd := Command{Line: line, Name: fields[0], Args: fields[1:]}
		if err := check(cmd); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return cmds, nil
}

func check(cmd Command) error {
	n, ok := arity[cmd.Name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd.Name)
	}

	if n < 0 {
		if len(cmd.Args) < 2 {
			return fmt.Errorf("%w: %s needs an error kind and a command", ErrSyntax, cmd.Name)
		}
		if _, ok := errorKinds[cmd.Args[0]]; !ok {
			return fmt.Errorf("%w: unknown error kind %q", ErrSyntax, cmd.Args[0])
		}
		inner := Command{Line: cmd.Line, Name: cmd.Args[1], Args: cmd.Args[2:]}
		if inner.Name == cmd.Name {
			return fmt.Errorf("%w: %s cannot be nested", ErrSyntax, cmd.Name)
		}
		return check(inner)
	}

	if len(cmd.Args) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrSyntax, cmd.Name, n, len(cmd.Args))
	}
	if numeric[cmd.Name] {
		if _, err := cmd.floats(); err != nil {
			return err
		}
	}
	return nil
}

func (c Command) floats() ([]float64, error) {
	out := make([]float64, len(c.Args))
	for i, a := range c.Args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a number", ErrSyntax, c.Name, a)
		}
		out[i] = v
	}
	return out, nil
}
