package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/salesdesk/internal/client/config"
	"github.com/dmitrijs2005/salesdesk/internal/client/controller"
	"github.com/dmitrijs2005/salesdesk/internal/client/state"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

type App struct {
	config *config.Config
	ctrl   *controller.Controller
	log    logging.Logger
	state  state.State
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, ctrl *controller.Controller, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		config: c,
		ctrl:   ctrl,
		log:    log,
		state:  state.New(c.HistoryLimit),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run starts the REPL on stdin and blocks until the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.ctrl.Close(ctx)

	a.println("Welcome to salesdesk (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.state.Session.LoggedIn
}

func (a *App) getStatus() string {
	s := a.state.Session.Username
	if a.state.Upload.Name != "" {
		if s != "" {
			s += " "
		}
		s += a.state.Upload.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// apply folds ev into the current state.
func (a *App) apply(ev state.Event) {
	a.state = state.Reduce(a.state, ev)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
