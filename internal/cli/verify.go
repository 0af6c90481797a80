package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/google/subcommands"
)

type verifyCmd struct {
	env     *Env
	tenant  string
	session string
}

func (*verifyCmd) Name() string { return "verify" }
func (*verifyCmd) Synopsis() string {
	return "run the consistency checks on a tenant ledger or a single bank import session"
}
func (*verifyCmd) Usage() string {
	return `ledgerctl verify -tenant <tenant_id> [-session <session_id>]

  Prints the verification report as JSON. Exits with status 1 when the report
  has findings, so the command can gate scheduled jobs. Nothing is corrected.
`
}

func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tenant, "tenant", "", "Tenant whose ledger is verified.")
	f.StringVar(&c.session, "session", "", "Only compare this session's ledger rows with its staging snapshot.")
}

func (c *verifyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlags(map[string]string{"tenant": c.tenant}); err != nil {
		c.env.fail("%v", err)
		return subcommands.ExitUsageError
	}

	return c.env.withServices(ctx, func(_ *config.Config, svc *portssvc.ServiceContainer) subcommands.ExitStatus {
		var (
			report *domain.VerificationReport
			err    error
		)
		if c.session != "" {
			report, err = svc.Verification.VerifySession(ctx, c.tenant, c.session)
		} else {
			report, err = svc.Verification.VerifyTenant(ctx, c.tenant)
		}
		if err != nil && (report == nil || !errors.Is(err, apperrors.ErrIntegrity)) {
			c.env.fail("Verification failed: %v", err)
			return subcommands.ExitFailure
		}
		if perr := c.env.printJSON(report); perr != nil {
			c.env.fail("Error writing report: %v", perr)
			return subcommands.ExitFailure
		}
		if !report.Healthy() {
			if apperrors.IsProbableDuplicate(err) {
				c.env.fail("Probable duplicate posting detected. Re-run the import or reverse the duplicate entries.")
			}
			c.env.fail("%d finding(s)", len(report.Findings))
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}

type trialBalanceCmd struct {
	env    *Env
	tenant string
	asJSON bool
}

func (*trialBalanceCmd) Name() string     { return "trial-balance" }
func (*trialBalanceCmd) Synopsis() string { return "print the per-account trial balance of a tenant" }
func (*trialBalanceCmd) Usage() string {
	return `ledgerctl trial-balance -tenant <tenant_id> [-json]
`
}

func (c *trialBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tenant, "tenant", "", "Tenant whose ledger is summarised.")
	f.BoolVar(&c.asJSON, "json", false, "Print JSON instead of a table.")
}

func (c *trialBalanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlags(map[string]string{"tenant": c.tenant}); err != nil {
		c.env.fail("%v", err)
		return subcommands.ExitUsageError
	}

	return c.env.withServices(ctx, func(cfg *config.Config, svc *portssvc.ServiceContainer) subcommands.ExitStatus {
		tb, err := svc.Verification.TrialBalance(ctx, c.tenant)
		if err != nil {
			c.env.fail("Error building trial balance: %v", err)
			return subcommands.ExitFailure
		}
		if c.asJSON {
			if err := c.env.printJSON(tb); err != nil {
				c.env.fail("Error writing trial balance: %v", err)
				return subcommands.ExitFailure
			}
		} else {
			writeTrialBalance(c.env, tb, cfg.DefaultCurrency)
		}
		if !tb.IsBalanced {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}

func writeTrialBalance(env *Env, tb *domain.TrialBalance, currency string) {
	w := tabwriter.NewWriter(env.Out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Account\tName\tDebit\tCredit\t")
	for _, row := range tb.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", row.AccountCode, row.AccountName,
			utils.FormatAmount(row.Debit, currency), utils.FormatAmount(row.Credit, currency))
	}
	fmt.Fprintf(w, "Total\t\t%s\t%s\t\n", utils.FormatAmount(tb.TotalDebits, currency), utils.FormatAmount(tb.TotalCredits, currency))
	w.Flush()

	if tb.IsBalanced {
		fmt.Fprintln(env.Out, "Balanced.")
	} else {
		fmt.Fprintln(env.Out, "NOT BALANCED.")
	}
}
