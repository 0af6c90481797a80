// Package cli implements ledgerctl, the operator command line for the ledger engine.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
	"github.com/SscSPs/ledger_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_engine/pkg/database"
	"github.com/google/subcommands"
)

// Env is what every command runs against. Tests replace OpenServices with mocks.
type Env struct {
	LoadConfig   func() (*config.Config, error)
	OpenServices func(ctx context.Context, cfg *config.Config) (*portssvc.ServiceContainer, func(), error)
	Out          io.Writer
	Err          io.Writer
}

// DefaultEnv connects to the configured database and writes to stdout/stderr.
func DefaultEnv() *Env {
	return &Env{
		LoadConfig:   config.LoadConfig,
		OpenServices: openServices,
		Out:          os.Stdout,
		Err:          os.Stderr,
	}
}

func openServices(ctx context.Context, cfg *config.Config) (*portssvc.ServiceContainer, func(), error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}
	repos := pgsql.NewRepositoryProvider(pool)
	return services.NewServiceContainer(cfg, repos), func() { database.ClosePgxPool(pool) }, nil
}

// Register the subcommands.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&verifyCmd{env: env}, "verification")
	c.Register(&trialBalanceCmd{env: env}, "verification")

	c.Register(&postSessionCmd{env: env}, "bank imports")
	c.Register(&archiveSessionCmd{env: env}, "bank imports")

	c.Register(&tokenCmd{env: env}, "access")
}

// withServices loads config, opens the services and hands them to fn.
func (e *Env) withServices(ctx context.Context, fn func(cfg *config.Config, svc *portssvc.ServiceContainer) subcommands.ExitStatus) subcommands.ExitStatus {
	cfg, err := e.LoadConfig()
	if err != nil {
		e.fail("Error loading config: %v", err)
		return subcommands.ExitFailure
	}
	svc, closeFn, err := e.OpenServices(ctx, cfg)
	if err != nil {
		e.fail("Error connecting to the ledger database: %v", err)
		return subcommands.ExitFailure
	}
	defer closeFn()
	return fn(cfg, svc)
}

func (e *Env) fail(format string, args ...any) {
	fmt.Fprintf(e.Err, format+"\n", args...)
}

func (e *Env) printJSON(v any) error {
	enc := json.NewEncoder(e.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireFlags reports the first empty flag by name.
func requireFlags(values map[string]string) error {
	for _, name := range []string{"tenant", "session", "user"} {
		if v, ok := values[name]; ok && v == "" {
			return fmt.Errorf("-%s is required", name)
		}
	}
	return nil
}
