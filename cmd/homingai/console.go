package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"homingai-bridge/internal/application"
	"homingai-bridge/internal/domain"
)

var (
	okText    = color.New(color.FgGreen, color.Bold)
	failBadge = color.New(color.FgRed, color.Bold)
	failText  = color.New(color.FgRed)
	mutedText = color.New(color.FgHiBlack)
	infoText  = color.New(color.FgCyan)
)

func printResult(w io.Writer, r domain.Result) {
	if r.OK {
		okText.Fprintln(w, r.Text)
		return
	}
	failBadge.Fprintf(w, "[%s] ", r.Cause)
	failText.Fprintln(w, r.Message)
}

func printFlowResult(w io.Writer, r application.FlowResult) {
	switch r.Type {
	case application.FlowCreateEntry:
		okText.Fprint(w, "created ")
		fmt.Fprintf(w, "%s ", r.Entry.Title)
		mutedText.Fprintf(w, "(%s)\n", r.Entry.ID)
	case application.FlowAbort:
		failBadge.Fprint(w, "aborted ")
		failText.Fprintln(w, r.Reason)
	case application.FlowForm:
		for field, code := range r.Errors {
			failBadge.Fprintf(w, "%s: ", field)
			failText.Fprintln(w, code)
		}
	}
}

// consoleResponder prints every assist round trip.
type consoleResponder struct {
	mu  sync.Mutex
	out io.Writer
}

func (c *consoleResponder) Respond(_ context.Context, input string, result domain.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if input != "" {
		infoText.Fprint(c.out, "> ")
		fmt.Fprintln(c.out, input)
	}
	printResult(c.out, result)
	return nil
}
