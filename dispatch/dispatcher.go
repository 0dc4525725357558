package dispatch

import (
	cliffs "github.com/michalwa/go-cliffs"
	"github.com/michalwa/go-cliffs/match"
)

// Dispatcher holds registered commands and routes calls to the one matching
// best.
type Dispatcher struct {
	commands []*Command
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a command to the dispatcher.
func (d *Dispatcher) Register(cmd *Command) {
	d.commands = append(d.commands, cmd)
}

// Command compiles a grammar into a command, registers it and returns it.
func (d *Dispatcher) Command(grammar string, callback Callback, opts ...Option) (*Command, error) {
	cmd, err := NewCommand(grammar, callback, opts...)
	if err != nil {
		return nil, err
	}
	d.Register(cmd)
	return cmd, nil
}

// Dispatch matches the call against every registered command and executes
// the callback of the highest-scoring full match (ties broken by
// registration order), returning the callback result. When no command fully
// matches, the failure of the highest-scoring partial match is returned;
// when no command scored at all, an UnknownCommandError.
func (d *Dispatcher) Dispatch(call string) (any, error) {
	var bestMatch *match.CallMatch
	var bestCmd *Command
	var bestFail *match.Fail
	bestFailScore := 0.0

	for _, cmd := range d.commands {
		m, fail := cmd.Match(call)
		if fail == nil {
			if bestMatch == nil || m.Score > bestMatch.Score {
				bestMatch = m
				bestCmd = cmd
			}
		} else if bestFail == nil || m.Score > bestFailScore {
			bestFail = fail
			bestFailScore = m.Score
		}
	}

	if bestCmd != nil {
		return bestCmd.Execute(bestMatch)
	}
	if bestFail != nil && bestFailScore > 0 {
		return nil, bestFail
	}
	return nil, cliffs.FormatError(UnknownCommandError, "unknown command")
}

// UsageLines returns the usage messages of all registered commands, blocks
// separated by a separator line. Wrapping works as in Command.UsageLines.
func (d *Dispatcher) UsageLines(separator string, maxWidth, indentWidth int) []string {
	var lines []string
	for i, cmd := range d.commands {
		block := cmd.UsageLines(maxWidth, indentWidth)
		if len(block) == 0 {
			continue
		}
		if i > 0 {
			lines = append(lines, separator)
		}
		lines = append(lines, block...)
	}
	return lines
}
