// Command cliffsdemo runs an interactive command-line grammar demo: a few
// example commands are registered with a dispatcher and calls typed at the
// prompt are matched and executed.
package main

import (
	"bufio"
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	cliffs "github.com/michalwa/go-cliffs"
	"github.com/michalwa/go-cliffs/dispatch"
	"github.com/michalwa/go-cliffs/match"
	"github.com/michalwa/go-cliffs/syntax"
)

const usageWidth = 70

func main() {
	insensitive := false

	opts, _, err := getopt.Getopts(os.Args, "hin")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			fmt.Println("Usage is  cliffsdemo [-i] [-n]")
			fmt.Println("  -i\tmatch literals case-insensitively")
			fmt.Println("  -n\tdisable colored output")
			return
		case 'i':
			insensitive = true
		case 'n':
			color.NoColor = true
		}
	}

	d, err := buildDispatcher(insensitive)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color.Blue("Type a command, \"help\" for a list, \"exit\" to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		result, err := d.Dispatch(scanner.Text())
		switch e := err.(type) {
		case nil:
			if s, ok := result.(string); ok && s != "" {
				fmt.Println(s)
			}
		case *match.Fail:
			color.Red("Invalid syntax: %s", e.Message)
		case *cliffs.Error:
			color.Yellow("Unknown command")
		default:
			color.Red("%s", err)
		}
	}
}

func buildDispatcher(insensitive bool) (*dispatch.Dispatcher, error) {
	d := dispatch.NewDispatcher()
	parser := &syntax.Parser{AllCaseInsensitive: insensitive}

	commands := []struct {
		grammar     string
		description string
		callback    dispatch.Callback
	}{
		{
			"set [loud] alarm at <time: int> (am|pm) [with message <message>]",
			"Sets an alarm, optionally with a message.",
			setAlarm,
		},
		{
			"i [dont] like bread",
			"States a bread preference.",
			likeBread,
		},
		{
			"repeat <times: int> times <what...*>",
			"Repeats the rest of the line verbatim.",
			repeatTimes,
		},
		{
			"count {[from <from: int>] [to <to: int>]}",
			"Counts over a range; bounds may come in any order.",
			countRange,
		},
		{
			"help",
			"Shows this message.",
			func(m *match.CallMatch) (any, error) { return showHelp(d), nil },
		},
		{
			"exit|quit",
			"Leaves the demo.",
			func(m *match.CallMatch) (any, error) {
				fmt.Println("Bye!")
				os.Exit(0)
				return nil, nil
			},
		},
	}

	for _, c := range commands {
		_, err := d.Command(c.grammar, c.callback,
			dispatch.WithParser(parser), dispatch.WithDescription(c.description))
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func setAlarm(m *match.CallMatch) (any, error) {
	time, _ := m.Param("time")
	ampm := []string{"AM", "PM"}[m.Variant(0)]

	s := fmt.Sprintf("Setting an alarm at %d %s", time, ampm)
	if m.Optional(0) {
		s = fmt.Sprintf("Setting a loud alarm at %d %s", time, ampm)
	}
	if m.Optional(1) {
		message, _ := m.Param("message")
		s += fmt.Sprintf(" with message %q", message)
	}
	return s, nil
}

func likeBread(m *match.CallMatch) (any, error) {
	if m.Optional(0) {
		return "I don't like bread either", nil
	}
	return "I like bread too", nil
}

func repeatTimes(m *match.CallMatch) (any, error) {
	times, _ := m.Param("times")
	what, _ := m.Param("what")
	for i := 0; i < times.(int); i++ {
		fmt.Println(what)
	}
	return nil, nil
}

func countRange(m *match.CallMatch) (any, error) {
	from, to := 0, 10
	if v, ok := m.Param("from"); ok {
		from = v.(int)
	}
	if v, ok := m.Param("to"); ok {
		to = v.(int)
	}
	for i := from; i <= to; i++ {
		fmt.Print(i, " ")
	}
	fmt.Println()
	return nil, nil
}

func showHelp(d *dispatch.Dispatcher) string {
	header := color.New(color.Bold).Sprintln("Known commands")
	lines := d.UsageLines("", usageWidth, 4)
	out := header
	for _, line := range lines {
		out += line + "\n"
	}
	return out[:len(out)-1]
}
