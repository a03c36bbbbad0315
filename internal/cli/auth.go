package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type registerCmd struct {
	app      *App
	email    string
	name     string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `paisa register -email <email> -name <full name> -password <password>

  Creates an account on the expense store and logs in.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address for the new account.")
	f.StringVar(&c.name, "name", "", "Full name for the new account.")
	f.StringVar(&c.password, "password", "", "Password for the new account.")
}

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(c.app.Out, "Error: -email and -password are required.")
		return subcommands.ExitUsageError
	}
	user, err := c.app.Store.Register(ctx, c.email, c.name, c.password)
	if err != nil {
		return c.app.fail(err)
	}
	token, err := c.app.Store.Login(ctx, c.email, c.password)
	if err != nil {
		return c.app.fail(err)
	}
	if err := c.app.Session.SetToken(token.AccessToken); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Welcome, %s. You are now logged in.\n", user.Email)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	app      *App
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in to the expense store" }
func (*loginCmd) Usage() string {
	return `paisa login -email <email> -password <password>

  Exchanges credentials for a session token and persists it.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address of the account.")
	f.StringVar(&c.password, "password", "", "Password of the account.")
}

func (c *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(c.app.Out, "Error: -email and -password are required.")
		return subcommands.ExitUsageError
	}
	token, err := c.app.Store.Login(ctx, c.email, c.password)
	if err != nil {
		return c.app.fail(err)
	}
	if err := c.app.Session.SetToken(token.AccessToken); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintln(c.app.Out, "Logged in.")
	return subcommands.ExitSuccess
}

type logoutCmd struct {
	app *App
}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "discard the persisted session" }
func (*logoutCmd) Usage() string {
	return `paisa logout

  Removes the persisted session token.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.app.Session.Clear()
	fmt.Fprintln(c.app.Out, "Logged out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct {
	app *App
}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the logged-in account" }
func (*whoamiCmd) Usage() string {
	return `paisa whoami

  Prints the account behind the current session.
`
}

func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	user, err := c.app.Store.Me(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "%s <%s>\n", user.FullName, user.Email)
	return subcommands.ExitSuccess
}
