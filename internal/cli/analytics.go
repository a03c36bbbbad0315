package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type monthlyCmd struct {
	app    *App
	months int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "show monthly spending totals" }
func (*monthlyCmd) Usage() string {
	return `paisa monthly [-n <months>]

  Shows per-month spending totals for the last N months.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 6, "Number of months to report.")
}

func (c *monthlyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	totals, err := c.app.Store.MonthlyAnalytics(ctx, c.months)
	if err != nil {
		return c.app.fail(err)
	}
	w := tabwriter.NewWriter(c.app.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tTOTAL\tEXPENSES")
	for _, m := range totals {
		fmt.Fprintf(w, "%s\t%s\t%d\n", m.Month, c.app.Format.Format(m.Total), m.Count)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type insightsCmd struct {
	app *App
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "show the spending overview" }
func (*insightsCmd) Usage() string {
	return `paisa insights

  Shows total spending, the 30-day trend and per-category totals.
`
}

func (*insightsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *insightsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	ins, err := c.app.Store.Insights(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "Total spending: %s across %d transactions\n",
		c.app.Format.Format(ins.TotalSpending), ins.TotalTransactions)
	fmt.Fprintf(c.app.Out, "30-day trend:   %+.1f%%\n", ins.SpendingTrend)
	if len(ins.Categories) > 0 {
		fmt.Fprintln(c.app.Out)
		w := tabwriter.NewWriter(c.app.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tTOTAL\tEXPENSES")
		for _, cat := range ins.Categories {
			fmt.Fprintf(w, "%s\t%s\t%d\n", cat.Category, c.app.Format.Format(cat.Total), cat.Count)
		}
		w.Flush()
	}
	return subcommands.ExitSuccess
}

type dashboardCmd struct {
	app *App
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the account dashboard" }
func (*dashboardCmd) Usage() string {
	return `paisa dashboard

  Shows account details, overall statistics, the category breakdown and
  recent expenses in one view.
`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.requireSession(); err != nil {
		return c.app.fail(err)
	}
	d, err := c.app.Store.Dashboard(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "%s <%s>, member since %s\n",
		d.UserInfo.FullName, d.UserInfo.Email, d.AccountInfo.MemberSince)
	fmt.Fprintf(c.app.Out, "Spent %s across %d transactions (%s on average)\n",
		c.app.Format.Format(d.ExpenseStatistics.TotalSpent),
		d.ExpenseStatistics.TotalTransactions,
		c.app.Format.Format(d.ExpenseStatistics.AveragePerTransaction))
	if len(d.CategoryBreakdown) > 0 {
		fmt.Fprintln(c.app.Out)
		w := tabwriter.NewWriter(c.app.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tTOTAL\tSHARE")
		for _, cat := range d.CategoryBreakdown {
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", cat.Category, c.app.Format.Format(cat.Total), cat.Percentage)
		}
		w.Flush()
	}
	if len(d.RecentExpenses) > 0 {
		fmt.Fprintln(c.app.Out, "\nRecent expenses:")
		for _, e := range d.RecentExpenses {
			fmt.Fprintf(c.app.Out, "  %s  %s  %s\n", e.Date, c.app.Format.Format(e.Amount), e.Title)
		}
	}
	return subcommands.ExitSuccess
}
