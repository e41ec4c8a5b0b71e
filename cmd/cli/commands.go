package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/pinledger/internal/adapter/http/dto"
)

func accountPath(id, op string) string {
	return "/api/v1/accounts/" + url.PathEscape(id) + "/" + op
}

func parseAmount(s string) (*decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return &amount, nil
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func balanceCmd() *cobra.Command {
	var account, pin string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Check an account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			var resp dto.BalanceResponse
			if err := newAPIClient().post(ctx, accountPath(account, "balance"), dto.PINRequest{PIN: pin}, &resp); err != nil {
				return report(cmd.OutOrStdout(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Current Balance: $%s\n", resp.Balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number (e.g. ACC001)")
	cmd.Flags().StringVar(&pin, "pin", "", "Account PIN")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("pin")

	return cmd
}

func detailsCmd() *cobra.Command {
	var account, pin string

	cmd := &cobra.Command{
		Use:   "details",
		Short: "Show account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			var resp dto.AccountDetailsResponse
			if err := newAPIClient().post(ctx, accountPath(account, "details"), dto.PINRequest{PIN: pin}, &resp); err != nil {
				return report(cmd.OutOrStdout(), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account Number: %s\n", resp.AccountID)
			fmt.Fprintf(out, "Account Holder: %s\n", resp.HolderName)
			fmt.Fprintf(out, "Balance: $%s\n", resp.Balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number (e.g. ACC001)")
	cmd.Flags().StringVar(&pin, "pin", "", "Account PIN")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("pin")

	return cmd
}

func amountCmd(use, short, op, verb string) *cobra.Command {
	var account, pin, amount string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}

			ctx, cancel := requestContext(cmd)
			defer cancel()

			var resp dto.ReceiptResponse
			req := dto.AmountRequest{PIN: pin, Amount: value}
			if err := newAPIClient().post(ctx, accountPath(account, op), req, &resp); err != nil {
				return report(cmd.OutOrStdout(), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s successful! Amount: $%s\n", verb, resp.Amount)
			fmt.Fprintf(out, "New Balance: $%s\n", resp.Balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account number (e.g. ACC001)")
	cmd.Flags().StringVar(&pin, "pin", "", "Account PIN")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount, at most two decimal places")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("pin")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func withdrawCmd() *cobra.Command {
	return amountCmd("withdraw", "Withdraw money from an account", "withdraw", "Withdrawal")
}

func depositCmd() *cobra.Command {
	return amountCmd("deposit", "Deposit money into an account", "deposit", "Deposit")
}

func transferCmd() *cobra.Command {
	var from, pin, to, amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer money between accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}

			ctx, cancel := requestContext(cmd)
			defer cancel()

			var resp dto.ReceiptResponse
			req := dto.TransferRequest{FromAccountID: from, PIN: pin, ToAccountID: to, Amount: value}
			if err := newAPIClient().post(ctx, "/api/v1/transfers", req, &resp); err != nil {
				return report(cmd.OutOrStdout(), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Transfer successful! Amount: $%s\n", resp.Amount)
			fmt.Fprintf(out, "From: %s → To: %s\n", resp.AccountID, resp.CounterpartyID)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source account number")
	cmd.Flags().StringVar(&pin, "pin", "", "Source account PIN")
	cmd.Flags().StringVar(&to, "to", "", "Destination account number")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount, at most two decimal places")
	for _, name := range []string{"from", "pin", "to", "amount"} {
		cmd.MarkFlagRequired(name)
	}

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()

			out := cmd.OutOrStdout()

			var result dto.ConsistencyResponse
			if err := newAPIClient().get(ctx, "/api/v1/ledger/consistency", &result); err != nil {
				var apiErr *apiError
				if errors.As(err, &apiErr) {
					fmt.Fprintf(out, "Consistency check FAILED (Status: %d)\n", apiErr.Status)
					return errReported
				}
				return err
			}

			fmt.Fprintf(out, "Consistency check PASSED\n")
			fmt.Fprintf(out, "Consistent: %v\n", result.Consistent)
			fmt.Fprintf(out, "Status: %s\n", result.Status)
			return nil
		},
	}

	cmd.AddCommand(consistencyCmd)
	return cmd
}
