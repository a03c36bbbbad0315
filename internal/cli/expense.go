package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"paisa/internal/models"
	"paisa/internal/store"
)

type addCmd struct {
	app         *App
	title       string
	amount      float64
	date        string
	category    string
	merchant    string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `paisa add -title <title> -amount <amount> [-date <YYYY-MM-DD>] [-category <category>] [-merchant <merchant>] [-desc <description>]

  Records an expense. The date defaults to today; leave the category empty
  to let the store categorize it.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "What the expense was for.")
	f.Float64Var(&c.amount, "amount", 0, "Amount spent.")
	f.StringVar(&c.date, "date", "", "Expense date, YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.category, "category", "", "Expense category. Empty lets the store decide.")
	f.StringVar(&c.merchant, "merchant", "", "Merchant or payee.")
	f.StringVar(&c.description, "desc", "", "Free-form description.")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	date := c.date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	created, err := c.app.Service.Add(ctx, store.CreateExpenseRequest{
		Title:       c.title,
		Amount:      c.amount,
		Date:        date,
		Category:    models.Category(c.category),
		Merchant:    c.merchant,
		Description: c.description,
	})
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Recorded %s for %s on %s (%s).\n",
		c.app.Format.Format(created.Amount), created.Title, created.Date, created.ID)
	return subcommands.ExitSuccess
}

type listCmd struct {
	app *App
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all expenses" }
func (*listCmd) Usage() string {
	return `paisa list

  Lists every recorded expense, newest first.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	if err := c.app.Service.Refresh(ctx); err != nil {
		return c.app.fail(err)
	}
	expenses := c.app.Service.Snapshot()
	if len(expenses) == 0 {
		fmt.Fprintln(c.app.Out, "No expenses recorded yet.")
		return subcommands.ExitSuccess
	}
	w := tabwriter.NewWriter(c.app.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tTITLE\tID")
	for _, e := range expenses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Date, c.app.Format.Format(e.Amount), e.Category, e.Title, e.ID)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	app *App
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an expense by id" }
func (*deleteCmd) Usage() string {
	return `paisa delete <expense-id>

  Deletes a recorded expense.
`
}

func (*deleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(c.app.Out, "Error: expected exactly one expense id.")
		return subcommands.ExitUsageError
	}
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	id := f.Arg(0)
	if err := c.app.Service.Remove(ctx, id); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Deleted expense %s.\n", id)
	return subcommands.ExitSuccess
}

type receiptCmd struct {
	app *App
}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "create an expense from a receipt image" }
func (*receiptCmd) Usage() string {
	return `paisa receipt <image-file>

  Uploads a receipt image; the store extracts and records the expense.
`
}

func (*receiptCmd) SetFlags(_ *flag.FlagSet) {}

func (c *receiptCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(c.app.Out, "Error: expected exactly one receipt image path.")
		return subcommands.ExitUsageError
	}
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	path := f.Arg(0)
	file, err := os.Open(path)
	if err != nil {
		return c.app.fail(err)
	}
	defer file.Close()

	result, err := c.app.Service.ImportReceipt(ctx, filepath.Base(path), file)
	if err != nil {
		return c.app.fail(err)
	}
	if !result.Success {
		fmt.Fprintf(c.app.Out, "Receipt rejected: %s\n", result.Error)
		return subcommands.ExitFailure
	}
	if result.Extracted != nil {
		fmt.Fprintf(c.app.Out, "Extracted %s from %s (%s).\n",
			c.app.Format.Format(result.Extracted.Amount), result.Extracted.Merchant, result.Extracted.Category)
	}
	if result.ExpenseCreated {
		fmt.Fprintf(c.app.Out, "Expense %s created.\n", result.ExpenseID)
	} else if result.Message != "" {
		fmt.Fprintln(c.app.Out, result.Message)
	}
	return subcommands.ExitSuccess
}
