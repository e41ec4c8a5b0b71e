package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/pinledger/internal/adapter/http/dto"
	"github.com/iho/pinledger/internal/adapter/repository/memory"
	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/usecase"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration scenarios against a fresh in-process ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := memory.NewAccountStore(memory.DefaultSeed())
			if err != nil {
				return err
			}

			ledger := usecase.NewAccountLedger(
				memory.NewTxManager(store),
				memory.NewAccountRepository(store),
				memory.NewULIDGenerator(),
			).WithLockTimeout(timeout)

			return runDemo(cmd.Context(), cmd.OutOrStdout(), ledger)
		},
	}
}

type demo struct {
	ctx    context.Context
	out    io.Writer
	ledger usecase.Ledger
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(domain.AmountScale)
}

// fail prints err in the ledger's error format with hint, or the generic
// hint for its code when hint is empty.
func (d *demo) fail(err error, hint string) {
	status, resp := dto.ErrorFromDomain(err)
	if resp.Message == "" {
		resp.Message = err.Error()
	}
	if hint == "" {
		hint = hintFor(resp)
	}
	printError(d.out, status, resp, hint)
}

func (d *demo) balance(id, pin string) (decimal.Decimal, error) {
	return d.ledger.CheckBalance(d.ctx, usecase.Credentials{AccountID: id, PIN: pin})
}

func runDemo(ctx context.Context, out io.Writer, ledger usecase.Ledger) error {
	d := &demo{ctx: ctx, out: out, ledger: ledger}

	fmt.Fprintln(out, "═══════════════════ DEMONSTRATION MODE ═══════════════════")

	fmt.Fprintln(out, "\n▶ Scenario 1: Successful Balance Check")
	if balance, err := d.balance("ACC001", "1234"); err != nil {
		d.fail(err, "")
	} else {
		fmt.Fprintf(out, "✓ SUCCESS: Current balance is %s\n", money(balance))
	}

	fmt.Fprintln(out, "\n▶ Scenario 2: Account Not Found")
	if _, err := d.balance("ACC999", "1234"); err != nil {
		d.fail(err, "The requested account does not exist in our system")
	}

	fmt.Fprintln(out, "\n▶ Scenario 3: Unauthorized Access")
	if _, err := d.balance("ACC001", "9999"); err != nil {
		d.fail(err, "Invalid PIN provided. Access denied for security reasons.")
	}

	fmt.Fprintln(out, "\n▶ Scenario 4: Insufficient Balance")
	_, err := ledger.Withdraw(ctx, usecase.WithdrawInput{
		Credentials: usecase.Credentials{AccountID: "ACC002", PIN: "5678"},
		Amount:      decimal.NewFromInt(5000),
	})
	if err != nil {
		_, resp := dto.ErrorFromDomain(err)
		hint := ""
		if resp.Shortfall != "" {
			hint = fmt.Sprintf("Shortfall: $%s. Please reduce withdrawal amount or deposit more funds.", resp.Shortfall)
		}
		d.fail(err, hint)
	}

	fmt.Fprintln(out, "\n▶ Scenario 5: Successful Withdrawal")
	if err := d.withdrawal(); err != nil {
		d.fail(err, "")
	}

	fmt.Fprintln(out, "\n▶ Scenario 6: Successful Transfer")
	if err := d.transfer(); err != nil {
		d.fail(err, "")
	}

	fmt.Fprintln(out, "\n═══════════════════ END OF DEMONSTRATION ═══════════════════")
	return nil
}

func (d *demo) withdrawal() error {
	before, err := d.balance("ACC001", "1234")
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Balance before withdrawal: %s\n", money(before))

	amount := decimal.NewFromInt(1000)
	receipt, err := d.ledger.Withdraw(d.ctx, usecase.WithdrawInput{
		Credentials: usecase.Credentials{AccountID: "ACC001", PIN: "1234"},
		Amount:      amount,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "✓ SUCCESS: Withdrew %s\n", money(amount))
	fmt.Fprintf(d.out, "New balance: %s\n", money(receipt.Balance))
	return nil
}

func (d *demo) transfer() error {
	amount := decimal.NewFromInt(500)
	fmt.Fprintf(d.out, "Transferring %s from ACC001 to ACC002...\n", money(amount))

	if _, err := d.ledger.Transfer(d.ctx, usecase.TransferInput{
		FromAccountID: "ACC001",
		PIN:           "1234",
		ToAccountID:   "ACC002",
		Amount:        amount,
	}); err != nil {
		return err
	}

	from, err := d.balance("ACC001", "1234")
	if err != nil {
		return err
	}
	to, err := d.balance("ACC002", "5678")
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, "✓ SUCCESS: Transfer completed")
	fmt.Fprintf(d.out, "ACC001 balance: %s\n", money(from))
	fmt.Fprintf(d.out, "ACC002 balance: %s\n", money(to))
	return nil
}
