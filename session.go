package lispy

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/lispy-lang/lispy/parser"
)

// builtinNames lists every canonical builtin for REPL tab-completion
// and for the fuzzy "did you mean" hint printed alongside an Unbound
// symbol error. Mirrors the name table in RegisterBuiltins.
var builtinNames = []string{
	"list", "head", "tail", "join", "cons", "len", "eval",
	"+", "-", "*", "/", "%", "==", "!=", "<", "<=", ">", ">=",
	"if", "def", "=", "->", "print", "error", "type", "load", "env",
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	contStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Session is an interactive REPL bound to a single global Environment.
// Its shape mirrors launix-de-memcp's scm.Repl: a readline loop with
// multi-line continuation on an unmatched opening delimiter, a single
// anti-panic boundary per evaluated line, and no other state.
type Session struct {
	env *Environment
	cfg Config
	log *slog.Logger
	id  uuid.UUID
	rl  *readline.Instance
}

// NewSession builds a Session around env using cfg for history and
// color preferences. log receives one line per evaluated input, tagged
// with the session's UUID so concurrent sessions (e.g. under a
// supervisor) can be told apart in aggregated logs.
func NewSession(env *Environment, cfg Config, log *slog.Logger) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete:      readline.NewPrefixCompleter(completerItems()...),
	})
	if err != nil {
		return nil, err
	}
	s := &Session{env: env, cfg: cfg, log: log, id: uuid.New(), rl: rl}
	if !cfg.NoColor {
		s.rl.SetPrompt(promptStyle.Render("lispy> "))
	}
	return s, nil
}

func completerItems() []readline.PrefixCompleterInterface {
	items := make([]readline.PrefixCompleterInterface, len(builtinNames))
	for i, n := range builtinNames {
		items[i] = readline.PcItem(n)
	}
	return items
}

// Close flushes REPL history to disk.
func (s *Session) Close() error { return s.rl.Close() }

// Run drives the read-eval-print loop until EOF or interrupt on an
// empty line.
func (s *Session) Run() {
	newPrompt, contPrompt := "lispy> ", "   .. "
	if !s.cfg.NoColor {
		newPrompt = promptStyle.Render(newPrompt)
		contPrompt = contStyle.Render(contPrompt)
	}
	s.rl.SetPrompt(newPrompt)

	pending := ""
	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			if pending == "" && line == "" {
				fmt.Println("goodbye")
				return
			}
			pending = ""
			s.rl.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			fmt.Println("goodbye")
			return
		} else if err != nil {
			s.log.Error("readline", slog.String("error", err.Error()))
			return
		}

		if pending == "" && (line == "exit" || line == "quit") {
			fmt.Println("goodbye")
			return
		}

		pending += line + "\n"
		node, perr := parser.Parse(pending)
		if perr != nil {
			if isIncomplete(perr) {
				s.rl.SetPrompt(contPrompt)
				continue
			}
			s.printError(perr.Error())
			pending = ""
			s.rl.SetPrompt(newPrompt)
			continue
		}
		s.evalProgram(node)
		pending = ""
		s.rl.SetPrompt(newPrompt)
	}
}

// isIncomplete reports whether a parse error means "keep reading"
// rather than "this line is malformed" -- the only case here is a
// sexpr/qexpr left open at end of input, mirroring scm.Repl catching
// its own "expecting matching )" panic to decide whether to keep the
// previous line around.
func isIncomplete(err error) bool {
	perr, ok := err.(*parser.Error)
	return ok && strings.HasPrefix(perr.Message, "expected matching")
}

// evalProgram evaluates every top-level expression already parsed
// from one line of input, printing either the result or a styled
// error, recovering from any panic the way scm.Repl does so a single
// bad input never kills the session.
func (s *Session) evalProgram(root *parser.Node) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic recovered", slog.String("session", s.id.String()), slog.Any("recovered", r), slog.String("stack", string(debug.Stack())))
		}
	}()

	exprs := readChildren(root)
	for _, child := range exprs {
		result := Eval(s.env, child)
		var buf bytes.Buffer
		result.Print(&buf)
		if result.IsError() {
			s.printError(buf.String())
			s.hintUnbound(buf.String())
		} else {
			s.printResult(buf.String())
		}
	}
	s.log.Debug("eval", slog.String("session", s.id.String()), slog.Int("exprs", len(exprs)))
}

func (s *Session) printResult(text string) {
	if s.cfg.NoColor {
		fmt.Println("=> " + text)
		return
	}
	fmt.Println(resultStyle.Render("=> " + text))
}

func (s *Session) printError(text string) {
	if s.cfg.NoColor {
		fmt.Fprintln(os.Stderr, text)
		return
	}
	fmt.Fprintln(os.Stderr, errorStyle.Render(text))
}

// hintUnbound prints a fuzzy "did you mean" suggestion to stderr when
// the error names a symbol close to a registered builtin, without
// touching stdout's result stream.
func (s *Session) hintUnbound(errText string) {
	const marker = "Unbound symbol '"
	i := strings.Index(errText, marker)
	if i < 0 {
		return
	}
	rest := errText[i+len(marker):]
	j := strings.IndexByte(rest, '\'')
	if j < 0 {
		return
	}
	sym := rest[:j]
	matches := fuzzy.Find(sym, builtinNames)
	if len(matches) == 0 {
		return
	}
	sort.SliceStable(matches, func(a, b int) bool { return matches[a].Score > matches[b].Score })
	hint := "did you mean '" + matches[0].Str + "'?"
	if s.cfg.NoColor {
		fmt.Fprintln(os.Stderr, hint)
		return
	}
	fmt.Fprintln(os.Stderr, hintStyle.Render(hint))
}
