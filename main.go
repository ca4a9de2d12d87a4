package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sergev/rlisp/config"
	"github.com/sergev/rlisp/lang"
	"github.com/sergev/rlisp/reader"
	"github.com/sergev/rlisp/runtime"
)

const exitCommand = ".exit"

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	seed := flag.Int64("seed", 0, "seed for the random builtin (0 uses the configured or clock seed)")
	expr := flag.String("e", "", "evaluate the expression and print the result")
	flag.Parse()

	path, required := *configPath, true
	if path == "" {
		path, required = config.DefaultPath(), false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rlisp: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = seed
	}

	var opts []runtime.Option
	if cfg.Seed != nil {
		opts = append(opts, runtime.WithSeed(*cfg.Seed))
	}
	ev := runtime.NewEvaluator(opts...)

	if *expr != "" {
		val, err := runtime.EvaluateString(ev, *expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rlisp: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(val.String())
		return
	}

	if args := flag.Args(); len(args) > 0 {
		script := args[0]
		var err error
		if script == "-" {
			_, err = runtime.EvaluateReader(ev, os.Stdin)
		} else {
			_, err = runtime.EvaluateFile(ev, script)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "rlisp: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runREPL(ev, cfg)
}

func runREPL(ev *lang.Evaluator, cfg config.Config) {
	if !isInteractive() {
		runBufferedREPL(ev, bufio.NewReader(os.Stdin), os.Stdout, os.Stderr)
		return
	}
	runInteractiveREPL(ev, cfg)
}

// outcome of feeding one chunk of input to the REPL.
type outcome int

const (
	outcomeDone outcome = iota
	outcomeIncomplete
	outcomeExit
)

// handleInput parses src as one expression, evaluates it and writes the
// result to out or the error to errOut.
func handleInput(ev *lang.Evaluator, rd *reader.Reader, src string, out, errOut io.Writer) outcome {
	ast, err := rd.Parse(src)
	if err != nil {
		if reader.IsIncomplete(err) {
			return outcomeIncomplete
		}
		fmt.Fprintf(errOut, "parse error: %v\n", err)
		return outcomeDone
	}
	if ast.Type == lang.TypeSymbol {
		switch ast.Name() {
		case reader.EmptyMarker:
			return outcomeDone
		case exitCommand:
			return outcomeExit
		}
	}
	val, err := ev.Eval(ast)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return outcomeDone
	}
	fmt.Fprintln(out, val.String())
	return outcomeDone
}

func runBufferedREPL(ev *lang.Evaluator, in *bufio.Reader, out, errOut io.Writer) {
	rd := reader.New(ev.Atoms())
	var buffer strings.Builder

	for {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(errOut, "read error: %v\n", err)
			return
		}
		eof := errors.Is(err, io.EOF)
		if eof && buffer.Len() == 0 && line == "" {
			return
		}
		buffer.WriteString(line)
		result := handleInput(ev, rd, buffer.String(), out, errOut)
		switch result {
		case outcomeIncomplete:
			if !eof {
				continue
			}
			if _, err := rd.Parse(buffer.String()); err != nil {
				fmt.Fprintf(errOut, "parse error: %v\n", err)
			}
			return
		case outcomeExit:
			return
		}
		buffer.Reset()
		if eof {
			return
		}
	}
}

func runInteractiveREPL(ev *lang.Evaluator, cfg config.Config) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)
	state.SetCompleter(completer(ev.Env().Names()))

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	rd := reader.New(ev.Atoms())
	var buffer strings.Builder

	for {
		prompt := cfg.Prompt
		if buffer.Len() > 0 {
			prompt = cfg.ContinuationPrompt
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		buffer.WriteString(input)
		buffer.WriteString("\n")

		src := buffer.String()
		result := handleInput(ev, rd, src, os.Stdout, os.Stderr)
		if result == outcomeIncomplete {
			continue
		}
		buffer.Reset()
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			state.AppendHistory(trimmed)
		}
		if result == outcomeExit {
			return
		}
	}
}

// completer offers operator and constant names for the word under the
// cursor.
func completer(names []string) liner.Completer {
	return func(line string) []string {
		start := strings.LastIndexAny(line, " \t(") + 1
		prefix, word := line[:start], line[start:]
		if word == "" {
			return nil
		}
		var out []string
		for _, name := range names {
			if strings.HasPrefix(name, word) {
				out = append(out, prefix+name)
			}
		}
		return out
	}
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
