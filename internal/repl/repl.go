// Package repl implements an interactive shell over the evaluator's
// driver commands. STIMPL's surface-syntax parser is an external
// collaborator out of scope for this repository, so the shell operates
// on serialized Program documents rather than STIMPL source text: :load
// reads one, :run evaluates it, :env inspects the resulting environment.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/stimpl/internal/ast"
	"github.com/sunholo/stimpl/internal/config"
	"github.com/sunholo/stimpl/internal/env"
	"github.com/sunholo/stimpl/internal/eval"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL holds the session state between commands: the loaded program (if
// any), the live environment threaded across successive :run commands,
// and the evaluator the commands drive.
type REPL struct {
	cfg       *config.Config
	evaluator *eval.Evaluator
	env       *env.Env
	loaded    ast.Node
	loadedAs  string
}

// New creates a REPL that writes Print output to out and reads/writes
// the environment starting from an empty one.
func New(cfg *config.Config, out io.Writer) *REPL {
	if cfg == nil {
		cfg = config.Default()
	}
	return &REPL{
		cfg:       cfg,
		evaluator: eval.NewWithSink(out),
		env:       env.Empty(),
	}
}

// Start runs the read-eval-print loop until EOF or :quit.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	if f, err := os.Open(r.cfg.HistoryFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("STIMPL"))
	fmt.Fprintln(out, dim("Commands: :load <file>  :run  :env  :history  :quit"))

	line.SetCompleter(func(input string) (c []string) {
		if !strings.HasPrefix(input, ":") {
			return nil
		}
		for _, cmd := range []string{":load", ":run", ":env", ":history", ":quit"} {
			if strings.HasPrefix(cmd, input) {
				c = append(c, cmd)
			}
		}
		return c
	})

	for {
		input, err := line.Prompt("stimpl> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == ":quit" {
			break
		}
		r.dispatch(input, out)
	}

	if f, err := os.Create(r.cfg.HistoryFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) dispatch(input string, out io.Writer) {
	fields := strings.Fields(input)
	cmd := fields[0]

	switch cmd {
	case ":load":
		if len(fields) < 2 {
			fmt.Fprintf(out, "%s: usage: :load <file>\n", red("Error"))
			return
		}
		r.cmdLoad(fields[1], out)

	case ":run":
		r.cmdRun(out)

	case ":env":
		fmt.Fprint(out, env.Dump(r.env))

	case ":history":
		fmt.Fprintln(out, dim("(history is kept by the line editor; use up/down arrows)"))

	default:
		fmt.Fprintf(out, "%s: unknown command %s\n", yellow("Warning"), cmd)
	}
}

func (r *REPL) cmdLoad(path string, out io.Writer) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
		return
	}
	node, err := ast.Decode(data)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
		return
	}
	r.loaded = node
	r.loadedAs = path
	fmt.Fprintf(out, "%s %s\n", green("loaded"), path)
}

func (r *REPL) cmdRun(out io.Writer) {
	if r.loaded == nil {
		fmt.Fprintf(out, "%s: no program loaded; use :load <file>\n", red("Error"))
		return
	}

	v, t, next, err := r.evaluator.Eval(r.loaded, r.env)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
		return
	}

	r.env = next
	fmt.Fprintf(out, "%s (%s, %s)\n", green("=>"), v.String(), t)
}
