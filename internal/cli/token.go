package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/google/subcommands"
)

type tokenCmd struct {
	env    *Env
	tenant string
	user   string
	expiry time.Duration
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "issue a tenant-scoped bearer token for the HTTP API" }
func (*tokenCmd) Usage() string {
	return `ledgerctl token -tenant <tenant_id> -user <user_id> [-expiry <duration>]

  Signs the token with JWT_SECRET. The default expiry is JWT_EXPIRY_DURATION.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tenant, "tenant", "", "Tenant the token is scoped to.")
	f.StringVar(&c.user, "user", "", "User ID placed in the subject claim.")
	f.DurationVar(&c.expiry, "expiry", 0, "Token lifetime, for example 15m or 24h.")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlags(map[string]string{"tenant": c.tenant, "user": c.user}); err != nil {
		c.env.fail("%v", err)
		return subcommands.ExitUsageError
	}

	cfg, err := c.env.LoadConfig()
	if err != nil {
		c.env.fail("Error loading config: %v", err)
		return subcommands.ExitFailure
	}
	expiry := c.expiry
	if expiry <= 0 {
		expiry = cfg.JWTExpiryDuration
	}

	token, err := utils.GenerateJWT(c.user, c.tenant, cfg.JWTSecret, expiry, cfg.JWTIssuer)
	if err != nil {
		c.env.fail("Error signing token: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.env.Out, token)
	return subcommands.ExitSuccess
}
