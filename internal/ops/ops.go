// Package ops is the view layer: each operation calls the data source,
// writes the result into the stores, and reports the outcome through a
// Notifier. Surfaces (CLI, web, MCP) only call ops.
package ops

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/store"
)

// Variant is the notification style.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a user-facing toast.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Variant     Variant `json:"variant"`
}

// Notifier receives toasts. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a func to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Notification) {})

// DefaultReplyDelay is how long the assistant takes to answer a chat message.
const DefaultReplyDelay = time.Second

// App wires the data source to the stores.
type App struct {
	Source   source.DataSource
	Stores   *store.Stores
	Notifier Notifier
	Logger   zerolog.Logger

	// Policy is config.PolicyOptimistic or config.PolicyLatest.
	Policy string

	// Mode is reported by the dashboard.
	Mode source.Mode

	// ReplyDelay is the assistant's simulated thinking time.
	ReplyDelay time.Duration
}

// New returns an App with defaults for the optional fields.
func New(ds source.DataSource, stores *store.Stores, n Notifier, logger zerolog.Logger) *App {
	if n == nil {
		n = Discard
	}
	return &App{
		Source:     ds,
		Stores:     stores,
		Notifier:   n,
		Logger:     logger,
		Policy:     config.PolicyOptimistic,
		Mode:       source.ModeMock,
		ReplyDelay: DefaultReplyDelay,
	}
}

func (a *App) success(title, desc string) {
	a.Notifier.Notify(Notification{Title: title, Description: desc, Variant: VariantDefault})
}

// fail reports err as a destructive toast, logs it, and returns it.
func (a *App) fail(op, title string, err error) error {
	a.Logger.Error().Err(err).Str("op", op).Msg(title)
	a.Notifier.Notify(Notification{Title: title, Description: describe(err), Variant: VariantDestructive})
	return err
}

func describe(err error) string {
	if ae, ok := errors.As(err); ok {
		return ae.Message
	}
	return err.Error()
}

// required returns INVALID_REQUEST naming the first blank field.
func required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return errors.NewInvalidRequest(fields[i] + " is required")
		}
	}
	return nil
}

// apply writes a fetched list into c according to the list policy.
func apply[T any](a *App, c *store.Collection[T], mark uint64, fetched []T) {
	if a.Policy == config.PolicyLatest {
		c.Set(fetched)
		return
	}
	c.Reconcile(mark, fetched)
}
