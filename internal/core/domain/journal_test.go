package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestJournalEntry_IsBalanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.JournalLine
		want  bool
	}{
		{
			name: "exactly balanced",
			lines: []domain.JournalLine{
				{AccountID: "cash", Debit: dec("100.00"), Credit: decimal.Zero},
				{AccountID: "rev", Debit: decimal.Zero, Credit: dec("100.00")},
			},
			want: true,
		},
		{
			name: "difference below tolerance",
			lines: []domain.JournalLine{
				{AccountID: "cash", Debit: dec("100.004"), Credit: decimal.Zero},
				{AccountID: "rev", Debit: decimal.Zero, Credit: dec("100.00")},
			},
			want: true,
		},
		{
			name: "difference at tolerance",
			lines: []domain.JournalLine{
				{AccountID: "cash", Debit: dec("100.01"), Credit: decimal.Zero},
				{AccountID: "rev", Debit: decimal.Zero, Credit: dec("100.00")},
			},
			want: false,
		},
		{
			name: "unbalanced",
			lines: []domain.JournalLine{
				{AccountID: "cash", Debit: dec("100"), Credit: decimal.Zero},
				{AccountID: "rev", Debit: decimal.Zero, Credit: dec("90")},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Lines: tt.lines}
			assert.Equal(t, tt.want, entry.IsBalanced())
		})
	}
}

func TestJournalLine_Swapped(t *testing.T) {
	line := domain.JournalLine{AccountID: "bank", Debit: dec("25.00"), Credit: decimal.Zero}
	swapped := line.Swapped()

	assert.True(t, swapped.Credit.Equal(dec("25.00")))
	assert.True(t, swapped.Debit.IsZero())
	assert.True(t, line.Debit.Equal(dec("25.00")), "original line must not change")
	assert.False(t, swapped.IsDebit())
}

func TestSource_ClosedSet(t *testing.T) {
	for _, s := range domain.AllSources() {
		parsed, err := domain.ParseSource(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := domain.ParseSource("payroll")
	assert.Error(t, err)
	assert.False(t, domain.Source("").Valid())
}

func TestSource_EngineOwned(t *testing.T) {
	assert.True(t, domain.SourceOpeningBalance.EngineOwned())
	assert.True(t, domain.SourceReversal.EngineOwned())
	assert.True(t, domain.SourceBank.EngineOwned())
	assert.False(t, domain.SourceManual.EngineOwned())
	assert.False(t, domain.SourceAccountsPayable.EngineOwned())
}

func TestJournalEntry_AccountIDsDistinct(t *testing.T) {
	entry := domain.JournalEntry{Lines: []domain.JournalLine{
		{AccountID: "a"}, {AccountID: "b"}, {AccountID: "a"},
	}}
	assert.Equal(t, []string{"a", "b"}, entry.AccountIDs())
}

func TestSessionStatus_OneWay(t *testing.T) {
	assert.True(t, domain.SessionStaged.CanTransitionTo(domain.SessionPosted))
	assert.True(t, domain.SessionPosted.CanTransitionTo(domain.SessionArchived))
	assert.False(t, domain.SessionStaged.CanTransitionTo(domain.SessionArchived))
	assert.False(t, domain.SessionPosted.CanTransitionTo(domain.SessionStaged))
	assert.False(t, domain.SessionArchived.CanTransitionTo(domain.SessionPosted))
}

func TestStagingSnapshot_Include(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := domain.JournalEntry{Lines: []domain.JournalLine{
		{Debit: dec("50"), Credit: decimal.Zero},
		{Debit: decimal.Zero, Credit: dec("50")},
	}}

	snap := domain.StagingSnapshot{}.Include(entry, 2, at).Include(entry, 2, at)

	assert.Equal(t, 2, snap.JournalEntryCount)
	assert.Equal(t, 4, snap.GLEntryCount)
	assert.True(t, snap.TotalDebits.Equal(dec("100")))
	assert.True(t, snap.IsBalanced)
	assert.True(t, snap.Difference().IsZero())
	assert.Equal(t, at, snap.StagedAt)
}

func TestResolveFiscalPeriodID(t *testing.T) {
	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-02", domain.ResolveFiscalPeriodID("current", date))
	assert.Equal(t, "2025-02", domain.ResolveFiscalPeriodID("", date))
	assert.Equal(t, "FY25-P1", domain.ResolveFiscalPeriodID("FY25-P1", date))
}

func TestNewTrialBalance(t *testing.T) {
	tb := domain.NewTrialBalance([]domain.TrialBalanceRow{
		{AccountCode: "1000", Debit: dec("1000"), Credit: decimal.Zero},
		{AccountCode: "2000", Debit: decimal.Zero, Credit: dec("400")},
		{AccountCode: "3900", Debit: decimal.Zero, Credit: dec("600")},
	})
	assert.True(t, tb.IsBalanced)
	assert.True(t, tb.TotalCredits.Equal(dec("1000")))
}
