package services

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const unmappedReason = "no active mapping rule matched the description"

// ruleMapper is the default BankTransactionMapper. It evaluates the tenant's
// stored rules against each description, lowest priority number first.
type ruleMapper struct {
	BaseService
	rules portsrepo.MappingRuleReader
}

// NewRuleMapper creates the rule-based bank transaction mapper.
func NewRuleMapper(rules portsrepo.MappingRuleReader) portssvc.BankTransactionMapper {
	return &ruleMapper{rules: rules}
}

var _ portssvc.BankTransactionMapper = (*ruleMapper)(nil)

type compiledRule struct {
	domain.MappingRule
	re *regexp.Regexp
}

func (r compiledRule) matches(description string) bool {
	desc := strings.ToLower(description)
	pattern := strings.ToLower(r.Pattern)
	switch r.PatternType {
	case domain.PatternContains:
		return strings.Contains(desc, pattern)
	case domain.PatternStartsWith:
		return strings.HasPrefix(desc, pattern)
	case domain.PatternEndsWith:
		return strings.HasSuffix(desc, pattern)
	case domain.PatternRegex:
		return r.re != nil && r.re.MatchString(description)
	}
	return false
}

func (m *ruleMapper) compile(ctx context.Context, rules []domain.MappingRule) []compiledRule {
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsActive || rule.Pattern == "" {
			continue
		}
		c := compiledRule{MappingRule: rule}
		if rule.PatternType == domain.PatternRegex {
			re, err := regexp.Compile("(?i)" + rule.Pattern)
			if err != nil {
				m.LogWarn(ctx, "Skipping mapping rule with invalid pattern",
					slog.String("rule_id", rule.ID),
					slog.String("error", err.Error()))
				continue
			}
			c.re = re
		}
		compiled = append(compiled, c)
	}
	return compiled
}

func (m *ruleMapper) MapTransactions(ctx context.Context, tenantID string, session domain.BankImportSession, txns []domain.BankTransaction) ([]domain.MappedTransaction, []domain.UnmappedTransaction, error) {
	rules, err := m.rules.ListActiveMappingRules(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	compiled := m.compile(ctx, rules)

	var mapped []domain.MappedTransaction
	var unmapped []domain.UnmappedTransaction
	for _, txn := range txns {
		rule, ok := firstMatch(compiled, txn.Description)
		if !ok {
			unmapped = append(unmapped, domain.UnmappedTransaction{Transaction: txn, Reason: unmappedReason})
			continue
		}
		mapped = append(mapped, domain.MappedTransaction{
			Transaction: txn,
			RuleID:      rule.ID,
			Lines:       bankCandidateLines(session.BankAccountID, rule.AccountID, txn),
		})
	}
	return mapped, unmapped, nil
}

func firstMatch(rules []compiledRule, description string) (compiledRule, bool) {
	for _, r := range rules {
		if r.matches(description) {
			return r, true
		}
	}
	return compiledRule{}, false
}

// bankCandidateLines debits the bank for money in and credits it for money out.
func bankCandidateLines(bankAccountID, contraAccountID string, txn domain.BankTransaction) []domain.CandidateLine {
	amount := txn.Amount.Abs()
	bank := domain.CandidateLine{AccountID: bankAccountID, Description: txn.Description, Debit: decimal.Zero, Credit: decimal.Zero}
	contra := domain.CandidateLine{AccountID: contraAccountID, Description: txn.Description, Debit: decimal.Zero, Credit: decimal.Zero}
	if txn.Amount.IsPositive() {
		bank.Debit = amount
		contra.Credit = amount
	} else {
		contra.Debit = amount
		bank.Credit = amount
	}
	return []domain.CandidateLine{bank, contra}
}
