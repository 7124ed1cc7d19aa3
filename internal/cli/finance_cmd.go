package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/domain"
)

func newFinanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Track income and expenses",
	}
	cmd.AddCommand(
		newFinanceAddCmd(app),
		newFinanceListCmd(app),
		newFinanceSummaryCmd(app),
		newFinanceRemoveCmd(app),
	)
	return cmd
}

func newFinanceAddCmd(app *App) *cobra.Command {
	var kind, category, dateFlag string

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			k := domain.TransactionKind(kind)
			if k != domain.TransactionIncome && k != domain.TransactionExpense {
				return fmt.Errorf("--kind must be income or expense")
			}
			tx := &domain.Transaction{
				Description: args[0],
				Amount:      amount,
				Kind:        k,
				Category:    category,
			}
			if dateFlag != "" {
				d, err := time.ParseInLocation(domain.DateLayout, dateFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateFlag, err)
				}
				tx.Date = d
			}
			return app.Finance.Add(context.Background(), tx)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "expense", "income or expense")
	cmd.Flags().StringVar(&category, "category", "other", "Expense category")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	return cmd
}

func newFinanceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := app.Finance.List(context.Background())
			if err != nil {
				return err
			}
			if len(txs) == 0 {
				fmt.Println(formatter.Dim("No transactions."))
				return nil
			}
			for _, tx := range txs {
				amount := fmt.Sprintf("%.2f", tx.Amount)
				if tx.Kind == domain.TransactionIncome {
					amount = formatter.StyleGreen.Render("+" + amount)
				} else {
					amount = formatter.StyleRed.Render("-" + amount)
				}
				fmt.Printf("%s  %s %s %s %s\n",
					formatter.Dim(shortID(tx.ID)),
					formatter.Dim(domain.DateString(tx.Date)),
					amount,
					tx.Description,
					formatter.Dim("("+tx.Category+")"))
			}
			return nil
		},
	}
}

func newFinanceSummaryCmd(app *App) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Monthly income/expense summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := now.Year(), now.Month()
			if monthFlag != "" {
				t, err := time.Parse("2006-01", monthFlag)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM): %w", monthFlag, err)
				}
				year, month = t.Year(), t.Month()
			}
			summary, err := app.Finance.Summary(context.Background(), year, month)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FinanceSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Month to summarize (YYYY-MM, default current)")
	return cmd
}

func newFinanceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			txs, err := app.Finance.List(ctx)
			if err != nil {
				return err
			}
			ids := make([]string, len(txs))
			for i, tx := range txs {
				ids[i] = tx.ID
			}
			id, err := resolveID(ids, args[0], "transaction")
			if err != nil {
				return err
			}
			return app.Finance.Delete(ctx, id)
		},
	}
}
