// Package cli implements the paisa command line application.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"paisa/internal/config"
	"paisa/internal/currency"
	apperrors "paisa/internal/errors"
	"paisa/internal/services"
	"paisa/internal/session"
	"paisa/internal/store"
)

// App carries the wired collaborators shared by every subcommand.
type App struct {
	Config  *config.Config
	Session *session.Session
	Store   *store.Client
	Service services.ExpenseServicer
	Format  *currency.Formatter
	Out     io.Writer
	In      io.Reader
}

// Register attaches every paisa subcommand to the commander.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&registerCmd{app: app}, "account")
	c.Register(&loginCmd{app: app}, "account")
	c.Register(&logoutCmd{app: app}, "account")
	c.Register(&whoamiCmd{app: app}, "account")

	c.Register(&addCmd{app: app}, "expenses")
	c.Register(&listCmd{app: app}, "expenses")
	c.Register(&deleteCmd{app: app}, "expenses")
	c.Register(&receiptCmd{app: app}, "expenses")

	c.Register(&monthlyCmd{app: app}, "analytics")
	c.Register(&insightsCmd{app: app}, "analytics")
	c.Register(&dashboardCmd{app: app}, "analytics")

	c.Register(&chatCmd{app: app}, "assistant")
}

// fail prints an error the way a user should read it: the message of an
// application error, or the raw error otherwise.
func (a *App) fail(err error) subcommands.ExitStatus {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintln(a.Out, "Error:", appErr.Message)
	} else {
		fmt.Fprintln(a.Out, "Error:", err)
	}
	return subcommands.ExitFailure
}

// requireSession rejects commands that need a logged-in user before any
// request goes out.
func (a *App) requireSession() error {
	if !a.Session.Valid() {
		return apperrors.WithMessage(apperrors.ErrSessionExpired, "please log in first with `paisa login`")
	}
	return nil
}
