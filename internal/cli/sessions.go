package cli

import (
	"context"
	"flag"
	"fmt"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/google/subcommands"
)

// sessionFlags are shared by the commands acting on one bank import session.
type sessionFlags struct {
	tenant  string
	session string
	user    string
}

func (s *sessionFlags) set(f *flag.FlagSet) {
	f.StringVar(&s.tenant, "tenant", "", "Tenant owning the session.")
	f.StringVar(&s.session, "session", "", "Bank import session ID.")
	f.StringVar(&s.user, "user", "ledgerctl", "User recorded as the actor.")
}

func (s *sessionFlags) validate() error {
	return requireFlags(map[string]string{"tenant": s.tenant, "session": s.session, "user": s.user})
}

type postSessionCmd struct {
	env *Env
	sessionFlags
}

func (*postSessionCmd) Name() string     { return "post-session" }
func (*postSessionCmd) Synopsis() string { return "post every staged entry of a bank import session" }
func (*postSessionCmd) Usage() string {
	return `ledgerctl post-session -tenant <tenant_id> -session <session_id> [-user <user_id>]

  Posting a session that is already posted is a no-op.
`
}

func (c *postSessionCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *postSessionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		c.env.fail("%v", err)
		return subcommands.ExitUsageError
	}

	return c.env.withServices(ctx, func(_ *config.Config, svc *portssvc.ServiceContainer) subcommands.ExitStatus {
		session, err := svc.Staging.PostSession(ctx, c.tenant, c.user, c.session)
		if err != nil {
			c.env.fail("Error posting session %s: %v", c.session, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(c.env.Out, "Session %s is %s: %d of %d transaction(s) posted.\n",
			session.ID, session.Status, session.PostedCount, session.TransactionCount)
		if session.Production != nil {
			fmt.Fprintf(c.env.Out, "Ledger debits %s, credits %s.\n",
				utils.FormatAmount(session.Production.TotalDebits, session.Currency),
				utils.FormatAmount(session.Production.TotalCredits, session.Currency))
		}
		return subcommands.ExitSuccess
	})
}

type archiveSessionCmd struct {
	env *Env
	sessionFlags
}

func (*archiveSessionCmd) Name() string { return "archive-session" }
func (*archiveSessionCmd) Synopsis() string {
	return "archive a posted bank import session and prune its live rows"
}
func (*archiveSessionCmd) Usage() string {
	return `ledgerctl archive-session -tenant <tenant_id> -session <session_id> [-user <user_id>]

  The archived totals must match the posted totals, otherwise nothing is pruned.
`
}

func (c *archiveSessionCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *archiveSessionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		c.env.fail("%v", err)
		return subcommands.ExitUsageError
	}

	return c.env.withServices(ctx, func(_ *config.Config, svc *portssvc.ServiceContainer) subcommands.ExitStatus {
		archived, err := svc.Staging.ArchiveSession(ctx, c.tenant, c.user, c.session)
		if err != nil {
			c.env.fail("Error archiving session %s: %v", c.session, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(c.env.Out, "Session %s archived: %d ledger row(s), debits %s, credits %s.\n",
			archived.ID, archived.ArchivedTotals.RowCount,
			utils.FormatAmount(archived.ArchivedTotals.Debits, archived.Currency),
			utils.FormatAmount(archived.ArchivedTotals.Credits, archived.Currency))
		return subcommands.ExitSuccess
	})
}
