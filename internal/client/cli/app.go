package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/forestadmin/internal/client/services"
	"github.com/dmitrijs2005/forestadmin/internal/logging"
)

const defaultPageSize = 10

type App struct {
	ws       *services.Workspace
	in       *bufio.Scanner
	out      io.Writer
	log      logging.Logger
	pageSize int
}

func NewApp(ws *services.Workspace, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		ws:       ws,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      log,
		pageSize: defaultPageSize,
	}
}

// Run reads commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println("forestadmin (type 'help' for commands)")
	a.runREPL(ctx)
}

func (a *App) status() string {
	var parts []string
	if id := a.ws.Facility.Record().SeqNo; id != 0 {
		parts = append(parts, fmt.Sprintf("forest #%d", id))
	} else if a.ws.Facility.Record().Name != "" {
		parts = append(parts, "new forest")
	}
	if id := a.ws.Notice.Record().SeqNo; id != 0 {
		parts = append(parts, fmt.Sprintf("notice #%d", id))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ") "
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) fail(err error) {
	a.println("error:", err)
}
