package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/fidelcastrodev/pyrustlang/internal/log"
	"github.com/fidelcastrodev/pyrustlang/internal/pyrust"
)

// CLI is the top-level command-line interface. With a path argument the
// interpreter runs the file; without one it starts the REPL.
type CLI struct {
	Path     string `arg:"" optional:"" type:"path" help:"Script file to run (.prl recommended); omit to start the REPL."`
	Verbose  bool   `short:"v" help:"Show caret-annotated source snippets for lex/parse errors."`
	Profile  bool   `help:"Write a CPU profile for the run to the current directory."`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Interpreter diagnostic log level."`
	Version  kong.VersionFlag `help:"Print the interpreter version."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("pyrust"),
		kong.Description("Pyrustlang interpreter: runs scripts or an interactive REPL."),
		kong.UsageOnError(),
		kong.Vars{"version": pyrust.Version},
	)
	log.SetLevel(log.ParseLevel(cli.LogLevel))
	os.Exit(run(cli))
}

func run(cli CLI) int {
	if cli.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if cli.Path == "" {
		return runREPL(cli)
	}
	return runFile(cli)
}

func runFile(cli CLI) int {
	data, err := os.ReadFile(cli.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", cli.Path, err)
		return 1
	}
	src := string(data)

	prog, perr := pyrust.Parse(src)
	if perr != nil {
		reportError(perr, src, cli.Verbose)
		return 1
	}
	log.Debug("parsed program", "path", cli.Path, "statements", len(prog))

	ip := pyrust.NewInterpreter()
	if rerr := ip.Run(prog); rerr != nil {
		reportError(rerr, src, cli.Verbose)
		return 1
	}
	return 0
}

// reportError writes the diagnostic to stderr; with verbose set, lex and
// parse errors gain a caret-annotated source snippet.
func reportError(err error, src string, verbose bool) {
	if verbose {
		err = pyrust.WrapErrorWithSource(err, src)
	}
	fmt.Fprintln(os.Stderr, err.Error())
}
