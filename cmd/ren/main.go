// Command ren is the Ren interpreter CLI: run a script, evaluate an
// expression, or start the REPL.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/marcin-radoszewski/ren/internal/trace"
)

type config struct {
	script       string
	evalExpr     string
	showVersion  bool
	showHelp     bool
	traceOn      bool
	traceFile    string
	traceMaxSize int
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "ren:", err)
		os.Exit(ExitUsage)
	}

	trace.Init(cfg.traceOn, cfg.traceFile, cfg.traceMaxSize)
	defer trace.Close()

	switch {
	case cfg.showHelp:
		printUsage(os.Stdout)
	case cfg.showVersion:
		printVersion(os.Stdout)
	case cfg.evalExpr != "":
		os.Exit(runEval(cfg.evalExpr))
	case cfg.script != "":
		os.Exit(runScript(cfg.script))
	default:
		os.Exit(runREPL())
	}
}

func parseArgs(args []string) (config, error) {
	cfg := config{traceMaxSize: 50}
	i := 0
	for i < len(args) {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			cfg.showHelp = true
		case "--version", "-v":
			cfg.showVersion = true
		case "--trace":
			cfg.traceOn = true
		case "--trace-file":
			i++
			if i >= len(args) {
				return cfg, fmt.Errorf("--trace-file needs a path")
			}
			cfg.traceFile = args[i]
			cfg.traceOn = true
		case "--trace-max-size":
			i++
			if i >= len(args) {
				return cfg, fmt.Errorf("--trace-max-size needs a number")
			}
			n, err := strconv.Atoi(args[i])
			if err != nil || n <= 0 {
				return cfg, fmt.Errorf("--trace-max-size needs a positive number")
			}
			cfg.traceMaxSize = n
		case "--eval", "-e":
			i++
			if i >= len(args) {
				return cfg, fmt.Errorf("--eval needs an expression")
			}
			cfg.evalExpr = args[i]
		default:
			if cfg.script != "" {
				return cfg, fmt.Errorf("unexpected argument: %s", arg)
			}
			cfg.script = arg
		}
		i++
	}
	return cfg, nil
}
