package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/juninatt/trader-journal/internal/analysis"
	"github.com/juninatt/trader-journal/internal/middleware"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/pagination"
	"github.com/juninatt/trader-journal/internal/services"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "journal",
		Short: "Query and maintain the trading journal",
		Long: `Journal reads the trading journal database configured through the
environment (DB_DRIVER, DB_PATH, ... or a .env file).

Examples:
  journal list --page 2
  journal show <entry-id>
  journal analyze <entry-id> --json
  journal history --type trade -n 10
  journal token --ttl 24h`,
		SilenceUsage: true,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newLatestCmd(a),
		newAnalyzeCmd(a),
		newRemoveCmd(a),
		newHistoryCmd(a),
		newTokenCmd(a),
		newMigrateCmd(a),
	)
	return root
}

func newListCmd(a *app) *cobra.Command {
	var page pagination.PageRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, err := a.journal()
			if err != nil {
				return err
			}
			result, err := journal.ListEntries(page)
			if err != nil {
				return fmt.Errorf("list entries: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tID\tTRADES\tSNAPSHOTS\tTOTAL CHANGE\tCOMMENT")
			for _, e := range result.Data {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
					e.Date.Format(time.DateOnly), e.ID, len(e.Trades()), len(e.Snapshots()),
					analysis.TotalChange(e).StringFixed(2), e.Comment)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d entries)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		},
	}
	cmd.Flags().IntVarP(&page.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVarP(&page.PageSize, "page-size", "n", 20, "entries per page")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one journal entry with its snapshots and sales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := a.journal()
			if err != nil {
				return err
			}
			entry, err := journal.GetEntry(args[0])
			if err != nil {
				return fmt.Errorf("get entry: %w", err)
			}
			return printEntry(cmd.OutOrStdout(), entry)
		},
	}
}

func newLatestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the most recent journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			journal, err := a.journal()
			if err != nil {
				return err
			}
			entry, err := journal.GetLatestEntry()
			if err != nil {
				return fmt.Errorf("latest entry: %w", err)
			}
			return printEntry(cmd.OutOrStdout(), entry)
		},
	}
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analyze <entry-id>",
		Short: "Print the analysis figures of a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := a.journal()
			if err != nil {
				return err
			}
			summary, err := journal.AnalyzeEntry(args[0])
			if err != nil {
				return fmt.Errorf("analyze entry: %w", err)
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return printSummary(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entry-id>",
		Short: "Delete a journal entry with its snapshots and sales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := a.journal()
			if err != nil {
				return err
			}
			if err := journal.DeleteEntry(args[0]); err != nil {
				return fmt.Errorf("remove entry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed journal entry %s\n", args[0])
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var filter services.AuditFilter
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent changes to the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			audit, err := a.auditTrail()
			if err != nil {
				return err
			}
			records, err := audit.History(filter)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tACTION\tRESOURCE\tID\tFIGURES")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.CreatedAt.Format(time.DateTime), r.Action, r.ResourceType, r.ResourceID, orDash(string(r.Changes)))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&filter.ResourceType, "type", "", "only this resource type (journal_entry, trade, trade_snapshot, executed_sale, asset)")
	cmd.Flags().StringVar(&filter.ResourceID, "id", "", "only this resource")
	cmd.Flags().IntVarP(&filter.Limit, "limit", "n", 50, "maximum number of records")
	return cmd
}

func newTokenCmd(a *app) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for the journal owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			token, err := middleware.GenerateToken(cfg, ttl)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_EXPIRES_IN)")
	return cmd
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the journal tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := a.database()
			if err != nil {
				return err
			}
			if err := manager.Migrate(); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func printEntry(out io.Writer, e *models.JournalEntry) error {
	fmt.Fprintf(out, "%s  %s\n", e.Date.Format(time.DateOnly), e.ID)
	if e.Comment != "" {
		fmt.Fprintf(out, "comment: %s\n", e.Comment)
	}
	fmt.Fprintf(out, "cash balance: %s\n", e.CashBalance.StringFixed(2))
	if e.InvestedCapital.Valid {
		fmt.Fprintf(out, "invested capital: %s\n", e.InvestedCapital.Decimal.StringFixed(2))
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nTRADE\tREMAINING\tOPEN\tCLOSE\tCHANGE\tCHANGE %\tSALES")
	for _, s := range e.Snapshots() {
		closePrice := "-"
		if s.ClosePrice.Valid {
			closePrice = s.ClosePrice.Decimal.String()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			tradeLabel(s.Trade()), s.RemainingQuantity, s.OpenPrice.String(), closePrice,
			analysis.ChangeAmount(s).StringFixed(2), analysis.ChangePercentage(s).StringFixed(2),
			describeSales(s.Sales()))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "total change: %s\n", analysis.TotalChange(e).StringFixed(2))
	return nil
}

func printSummary(out io.Writer, s *analysis.Summary) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "date\t%s\n", s.Date.Format(time.DateOnly))
	fmt.Fprintf(w, "total change\t%s\n", s.TotalChange.StringFixed(2))
	fmt.Fprintf(w, "average change %%\t%s\n", s.AverageChangePercentage.StringFixed(2))
	fmt.Fprintf(w, "closed / open snapshots\t%d / %d\n", s.ClosedSnapshots, s.OpenSnapshots)
	fmt.Fprintf(w, "morning buys\t%d\n", s.MorningBuys)
	fmt.Fprintf(w, "evening sells\t%d\n", s.EveningSells)
	fmt.Fprintf(w, "held over weekend\t%t\n", s.HeldOverWeekend)
	if err := w.Flush(); err != nil {
		return err
	}

	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nTRADE\tQTY\tREMAINING\tNET GAIN\tNET %\tCLOSED")
	for _, t := range s.Trades {
		label := t.Ticker
		if label == "" {
			label = t.Label
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%t\n",
			orDash(label), t.Quantity, t.RemainingQuantity,
			t.NetGain.StringFixed(2), t.NetGainPercentage.StringFixed(2), t.Closed)
	}
	return w.Flush()
}

func tradeLabel(t *models.Trade) string {
	if t == nil {
		return "-"
	}
	if a := t.Asset(); a != nil {
		return a.Ticker
	}
	return orDash(t.Label)
}

func describeSales(sales []*models.ExecutedSale) string {
	if len(sales) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(sales))
	for _, s := range sales {
		at := ""
		if s.SellTime != nil {
			at = " @ " + s.SellTime.String()
		}
		parts = append(parts, fmt.Sprintf("%d x %s%s", s.QuantitySold, s.SellPrice.String(), at))
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
