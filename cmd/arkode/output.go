package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
)

// textNotifier prints toasts as single lines.
type textNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func (n *textNotifier) Notify(t ops.Notification) {
	mark := "ok"
	if t.Variant == ops.VariantDestructive {
		mark = "!!"
	}
	line := fmt.Sprintf("[%s] %s", mark, t.Title)
	if t.Description != "" {
		line += ": " + t.Description
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, line)
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats err for the CLI exit message.
func outputError(err error) error {
	if ae, ok := errors.As(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", ae.Code, ae.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// render prints v as JSON when requested, else as a table built by rows.
func render(rt *runtime, v any, header table.Row, rows func(add func(table.Row))) error {
	if rt.json {
		return outputJSON(rt.out, v)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(rt.out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	rows(func(r table.Row) { tw.AppendRow(r) })
	tw.Render()
	return nil
}

// renderRecord prints one record as JSON or as a two-column table.
func renderRecord(rt *runtime, v any, fields [][2]any) error {
	if rt.json {
		return outputJSON(rt.out, v)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(rt.out)
	tw.SetStyle(table.StyleLight)
	for _, f := range fields {
		tw.AppendRow(table.Row{f[0], f[1]})
	}
	tw.Render()
	return nil
}

// stdinHasData checks if stdin has piped data.
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// markdownInput returns --markdown, falling back to piped stdin.
func markdownInput(c *cli.Context) (string, error) {
	if md := c.String("markdown"); md != "" || !stdinHasData() {
		return md, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return strings.TrimSpace(string(data)), nil
}
