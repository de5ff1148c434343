// Command stimpl is the driver entry point: it seeds an empty
// environment and invokes the evaluator on a Program node read from a
// serialized AST document, optionally emitting a debug dump of the
// final environment.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/config"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/eval"
	"github.com/sunholo/stimpl/internal/repl"
)

var (
	Version = "dev"

	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "print version information")
		debugFlag   = flag.Bool("debug", false, "dump the final environment after running")
		configPath  = flag.String("config", "stimpl.yaml", "path to a YAML config file")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("stimpl %s\n", Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if !cfg.Color {
		color.NoColor = true
	}

	if flag.NArg() == 0 {
		printHelp()
		return
	}

	switch command := flag.Arg(0); command {
	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "usage: stimpl run <program.json>")
			os.Exit(1)
		}
		runFile(flag.Arg(1), cfg)

	case "repl":
		repl.New(cfg, os.Stdout).Start(os.Stdout)

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func runFile(path string, cfg *config.Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	program, err := ast.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	value, typ, finalEnv, err := eval.Run(program, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s, %s)\n", green("result"), value.String(), typ)

	if cfg.Debug {
		fmt.Println("final environment (most recent first):")
		fmt.Print(env.Dump(finalEnv))
	}
}

func printHelp() {
	fmt.Println("stimpl — the STIMPL evaluator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  stimpl run <program.json>   evaluate a serialized Program AST")
	fmt.Println("  stimpl repl                 start an interactive driver shell")
	fmt.Println("  stimpl -version             print version information")
}
