// Command cliffsfmt reads command grammars, one per line, and prints their
// canonical renderings: redundant nesting is flattened and parenthesization
// normalized. Malformed grammars are reported with their line number.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michalwa/go-cliffs/syntax"
	"github.com/michalwa/go-cliffs/tree"
)

var (
	checkOnly   bool
	outFileName string
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  cliffsfmt [-e] [-o <name>] [<file>]")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "  <file>")
		fmt.Fprintln(flag.CommandLine.Output(), "\tgrammar file name, one grammar per line; standard input if omitted")
	}

	flag.BoolVar(&checkOnly, "e", false, "only check the grammars, print nothing but errors")
	flag.StringVar(&outFileName, "o", "", "output file name, default is standard output")
	flag.Parse()

	in := os.Stdin
	inName := "<stdin>"
	if flag.Arg(0) != "" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
		inName = flag.Arg(0)
	}

	out := io.Writer(os.Stdout)
	if outFileName != "" {
		f, err := os.Create(outFileName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if !format(in, inName, out) {
		os.Exit(1)
	}
}

// format renders every grammar line of in to out, reporting errors to
// stderr. Blank lines and # comments pass through untouched.
func format(in io.Reader, inName string, out io.Writer) bool {
	ok := true
	lineNo := 0

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			if !checkOnly {
				fmt.Fprintln(out, line)
			}
			continue
		}

		root, err := syntax.Parse(trimmed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", inName, lineNo, err)
			ok = false
			continue
		}
		if !checkOnly {
			fmt.Fprintln(out, tree.Render(root))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		ok = false
	}
	return ok
}
