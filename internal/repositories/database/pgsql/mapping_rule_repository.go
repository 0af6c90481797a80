package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMappingRuleRepository struct {
	BaseRepository
}

func newPgxMappingRuleRepository(pool *pgxpool.Pool) *PgxMappingRuleRepository {
	return &PgxMappingRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MappingRuleReader = (*PgxMappingRuleRepository)(nil)

// ListActiveMappingRules returns active rules ordered by ascending priority.
func (r *PgxMappingRuleRepository) ListActiveMappingRules(ctx context.Context, tenantID string) ([]domain.MappingRule, error) {
	query := `
		SELECT id, tenant_id, name, pattern, pattern_type, account_id, priority, is_active
		FROM mapping_rules
		WHERE tenant_id = $1 AND is_active
		ORDER BY priority ASC, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query mapping rules for tenant "+tenantID, err)
	}
	defer rows.Close()

	rules := []domain.MappingRule{}
	for rows.Next() {
		var m models.MappingRule
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.Pattern, &m.PatternType, &m.AccountID, &m.Priority, &m.IsActive); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan mapping rule row", err)
		}
		rules = append(rules, mapping.ToDomainMappingRule(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating mapping rule rows", err)
	}
	return rules, nil
}
