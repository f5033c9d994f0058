package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/log"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/preset"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/termhost"
	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/view"
)

type Run struct {
	Timer time.Duration `help:"Initial game timer, 0 disables it" default:"0s"`
	Quiet bool          `help:"Do not echo announcements to the terminal"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logs *log.Manager, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		state, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to enter raw terminal mode: %w", err)
		}
		defer func() { _ = term.Restore(int(os.Stdin.Fd()), state) }()
	}
	return r.Play(ctx, os.Stdin, os.Stdout, logs, rawLogger)
}

// Play runs the shell over the key stream in until the shell quits, the input
// ends or ctx is cancelled.
func (r *Run) Play(ctx context.Context, in io.Reader, out io.Writer, logs *log.Manager, rawLogger log.RawLogger) error {
	if rawLogger == nil {
		rawLogger = log.NewRaw(nil)
	}
	uiLog := logs.Channel("ui").Logger()
	game := &table{logger: logs.Channel("game").Logger(), timer: r.Timer}

	var announce view.Announcer = view.LogAnnouncer{Logger: uiLog}
	if !r.Quiet {
		announce = view.LogAnnouncer{Logger: uiLog, Next: view.NewWriterAnnouncer(log.TraceWriter(out, rawLogger))}
	}

	shell := view.NewShell(keyevent.NewTranslator(), announce, game, uiLog)
	timerLog := logs.Channel("timer").Logger()
	shell.Push(view.NewMenu("Main menu",
		view.Item{Label: "Play", Action: func(s *view.Shell) {
			game.logger.Info("game started", "timer", game.timer)
			s.Push(tableView{})
		}},
		view.Item{Label: "Timer", Action: func(s *view.Shell) {
			s.Push(preset.NewSelector(preset.Defaults(), game.timer, timerLog, func(d time.Duration) {
				game.timer = d
			}))
		}},
		view.Item{Label: "Quit", Action: func(s *view.Shell) { s.Quit() }},
	))

	type chunk struct {
		keys []keyevent.HostKey
		err  error
	}
	chunks := make(chan chunk)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		rd := termhost.NewReader(in, rawLogger)
		for {
			keys, err := rd.ReadKeys()
			select {
			case chunks <- chunk{keys: keys, err: err}:
			case <-stop:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			shell.Quit()
			return nil
		case <-shell.Done():
			return nil
		case c := <-chunks:
			for _, k := range c.keys {
				if isInterrupt(k) {
					shell.Quit()
					return nil
				}
				shell.Dispatch(k)
				select {
				case <-shell.Done():
					return nil
				default:
				}
			}
			if c.err != nil {
				shell.Quit()
				if errors.Is(c.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("failed to read terminal input: %w", c.err)
			}
		}
	}
}

// isInterrupt reports Ctrl+C, which raw mode delivers as a key.
func isInterrupt(k keyevent.HostKey) bool {
	return k.Ctrl && !k.Alt && k.Code == 'C'
}

// table stands in for the card table: it receives every key the views leave
// unconsumed.
type table struct {
	logger *slog.Logger
	timer  time.Duration
}

func (t *table) HandleEvents(batch []keyevent.Event) {
	for _, ev := range batch {
		t.logger.Debug("input", "event", ev.String())
	}
}

// tableView is pushed while a game is in progress. It only handles Escape,
// leaving every other key to the table.
type tableView struct{}

func (tableView) Title() string { return "Game" }

func (tableView) HandleKey(s *view.Shell, ev keyevent.Event) bool {
	if ev.Key != keyevent.KeyEscape || ev.Mod != keyevent.ModNone {
		return false
	}
	s.Logger().Info("game left")
	s.Pop()
	return true
}
