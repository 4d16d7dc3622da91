package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/sahilm/fuzzy"

	"github.com/fidelcastrodev/pyrustlang/internal/pyrust"
)

var replKeywords = []string{
	"let", "mut", "fn", "if", "else", "while", "return", "print",
	"true", "false", "i32", "f64", "str", "bool",
}

type styles struct {
	banner lipgloss.Style
	value  lipgloss.Style
	errMsg lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		banner: lipgloss.NewStyle().Bold(true),
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func runREPL(cli CLI) int {
	cfg := loadConfig()
	st := newStyles(cfg.colorEnabled())

	fmt.Println(st.banner.Render(fmt.Sprintf("Pyrustlang %s REPL", pyrust.Version)))
	fmt.Println("Type 'exit' to quit")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	ip := pyrust.NewInterpreter()
	ln.SetCompleter(completer(ip))

	for {
		code, ok := readStatement(ln, cfg.Prompt, cfg.ContPrompt)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" {
			return 0
		}

		v, echo, err := ip.EvalLine(code)
		if err != nil {
			if cli.Verbose {
				err = pyrust.WrapErrorWithSource(err, code)
			}
			fmt.Fprintln(os.Stderr, st.errMsg.Render(err.Error()))
			continue
		}
		if echo {
			fmt.Println(st.value.Render(pyrust.FormatValue(v)))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readStatement collects input lines until the parser stops reporting an
// incomplete construct, so multi-line functions and blocks can be typed
// naturally. Ctrl+C abandons the pending input; Ctrl+D ends the session.
func readStatement(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := pyrust.ParseInteractive(src); perr != nil && pyrust.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// completer offers fuzzy-ranked completions for the word under the cursor,
// drawn from the keywords and every identifier visible in the global
// scope.
func completer(ip *pyrust.Interpreter) liner.Completer {
	return func(line string) []string {
		start := len(line)
		for start > 0 && isWordByte(line[start-1]) {
			start--
		}
		word := line[start:]
		if word == "" {
			return nil
		}

		cands := append(ip.Global.Names(), replKeywords...)
		matches := fuzzy.Find(word, cands)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, line[:start]+m.Str)
		}
		return out
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
