package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"paisa/internal/assistant"
	"paisa/internal/models"
)

type chatCmd struct {
	app *App
}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "ask questions about your expenses" }
func (*chatCmd) Usage() string {
	return `paisa chat [question]

  With a question, answers it and exits. Without one, starts an interactive
  session; type "bye" or press Ctrl-D to leave.
`
}

func (*chatCmd) SetFlags(_ *flag.FlagSet) {}

func (c *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	if err := c.app.Service.Refresh(ctx); err != nil {
		return c.app.fail(err)
	}

	if f.NArg() > 0 {
		return c.answer(strings.Join(f.Args(), " "))
	}

	fmt.Fprintln(c.app.Out, "Ask me about your expenses. Type \"bye\" to leave.")
	scanner := bufio.NewScanner(c.app.In)
	for {
		fmt.Fprint(c.app.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.app.Out)
			return subcommands.ExitSuccess
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "bye" || text == "exit" || text == "quit" {
			fmt.Fprintln(c.app.Out, "Bye!")
			return subcommands.ExitSuccess
		}
		c.answer(text)
	}
}

func (c *chatCmd) answer(text string) subcommands.ExitStatus {
	res, err := c.app.Service.Ask(text)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintln(c.app.Out, res.Answer)
	c.renderPayload(res)
	return subcommands.ExitSuccess
}

// renderPayload prints the structured half of an answer underneath the
// sentence, when there is one.
func (c *chatCmd) renderPayload(res assistant.Result) {
	if res.Data == nil {
		return
	}
	for _, e := range res.Data.Expenses {
		fmt.Fprintf(c.app.Out, "  %s  %s  %s\n", e.Date, c.app.Format.Format(e.Amount), expenseLabel(e))
	}
	for _, cat := range res.Data.Categories {
		fmt.Fprintf(c.app.Out, "  %s: %s\n", cat.Category, c.app.Format.Format(cat.Total))
	}
}

func expenseLabel(e models.Expense) string {
	if e.Title != "" {
		return e.Title
	}
	if e.Merchant != "" {
		return e.Merchant
	}
	return string(e.Category)
}
