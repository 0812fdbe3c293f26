// Command lispy registers the closed builtin set into a fresh global
// environment, loads any files named on the command line, and then
// either exits or drops into an interactive session, the same
// two-mode shape as launix-de-memcp's own main.go (register builtins,
// load a file, Repl).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/dc0d/onexit"
	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/lispy-lang/lispy"
)

const banner = `Lispy Version 0.0.1
Press Ctrl+C or Ctrl+D to exit

`

// cli describes the lispy binary's flags and positional arguments.
type cli struct {
	Files   []string `arg:"" optional:"" help:"Lispy source files to load; when any are given, lispy exits after loading them instead of starting a REPL."`
	Watch   string   `help:"Reload this file on every change instead of starting a REPL." placeholder:"FILE"`
	Config  string   `default:".lispyrc.yaml" help:"Path to the REPL config file."`
	Profile string   `default:"" enum:",cpu,mem,trace" help:"Enable pkg/profile for this run." placeholder:"MODE"`
	NoColor bool     `help:"Disable colored REPL output."`
	Quiet   bool     `help:"Suppress the startup banner."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("lispy"),
		kong.Description("An interpreter for the Lispy language."),
		kong.UsageOnError(),
	)

	stopProfile := startProfile(c.Profile)
	defer stopProfile()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sessionID := uuid.New()
	log = log.With(slog.String("run", sessionID.String()))

	cfg, err := lispy.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lispy: config error:", err)
		os.Exit(1)
	}
	cfg.NoColor = cfg.NoColor || c.NoColor

	env := lispy.NewEnvironment()
	lispy.RegisterBuiltins(env)

	for _, path := range cfg.Prelude {
		if result := lispy.LoadFile(env, path, os.Stderr); result.IsError() {
			fmt.Fprintln(os.Stderr, "lispy: prelude:", result.String())
		}
	}

	for _, path := range c.Files {
		if result := lispy.LoadFile(env, path, os.Stderr); result.IsError() {
			fmt.Fprintln(os.Stderr, "lispy:", filepath.Base(path)+":", result.String())
			os.Exit(1)
		}
	}

	if c.Watch != "" {
		runWatch(env, c.Watch, log)
		return
	}

	if len(c.Files) > 0 {
		return
	}

	runRepl(env, cfg, log, c.Quiet)
}

func startProfile(mode string) func() {
	var opt func(*profile.Profile)
	switch mode {
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "trace":
		opt = profile.TraceProfile
	default:
		return func() {}
	}
	stopper := profile.Start(opt, profile.Quiet)
	return stopper.Stop
}

func runWatch(env *lispy.Environment, path string, log *slog.Logger) {
	stop := make(chan struct{})
	onexit.Register(func() { close(stop) })
	if err := lispy.WatchFile(env, path, log, stop); err != nil {
		fmt.Fprintln(os.Stderr, "lispy: watch:", err)
		os.Exit(1)
	}
}

func runRepl(env *lispy.Environment, cfg lispy.Config, log *slog.Logger, quiet bool) {
	if !quiet {
		fmt.Print(banner)
	}

	session, err := lispy.NewSession(env, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lispy:", err)
		os.Exit(1)
	}
	onexit.Register(func() { session.Close() })
	defer session.Close()

	session.Run()
}
