package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one leg of a submitted journal entry.
type JournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	CustomerID  string          `json:"customerID,omitempty"`
	InvoiceID   string          `json:"invoiceID,omitempty"`
	VendorID    string          `json:"vendorID,omitempty"`
}

// PostJournalRequest defines the data needed to post a journal entry directly.
// Only sources that are not produced by the ledger workflows are accepted here.
type PostJournalRequest struct {
	Source          string               `json:"source" binding:"required,ledger_source"`
	FiscalPeriodID  string               `json:"fiscalPeriodID" binding:"required"`
	JournalCode     string               `json:"journalCode"`
	Reference       string               `json:"reference"`
	Description     string               `json:"description" binding:"required"`
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit          int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken      *string `form:"nextToken"`
	Source         string  `form:"source" binding:"omitempty,ledger_source_any"`
	FiscalPeriodID string  `form:"fiscalPeriodID"`
	SessionID      string  `form:"sessionID"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string            `json:"lineID"`
	LineNumber  int               `json:"lineNumber"`
	AccountID   string            `json:"accountID"`
	AccountCode string            `json:"accountCode"`
	AccountName string            `json:"accountName"`
	Description string            `json:"description"`
	Debit       decimal.Decimal   `json:"debit"`
	Credit      decimal.Decimal   `json:"credit"`
	Currency    string            `json:"currency"`
	Dimensions  domain.Dimensions `json:"dimensions"`
}

// LedgerRowResponse defines the data returned for a general ledger row.
type LedgerRowResponse struct {
	ID             string          `json:"id"`
	JournalLineID  string          `json:"journalLineID"`
	AccountCode    string          `json:"accountCode"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// JournalResponse defines the data returned for a journal entry with ledger detail.
type JournalResponse struct {
	ID              string                `json:"id"`
	FiscalPeriodID  string                `json:"fiscalPeriodID"`
	JournalCode     string                `json:"journalCode"`
	Reference       string                `json:"reference"`
	Description     string                `json:"description"`
	Status          string                `json:"status"`
	Source          string                `json:"source"`
	TransactionDate time.Time             `json:"transactionDate"`
	PostingDate     time.Time             `json:"postingDate"`
	ReversalOf      *string               `json:"reversalOf,omitempty"`
	Metadata        map[string]string     `json:"metadata,omitempty"`
	TotalDebits     decimal.Decimal       `json:"totalDebits"`
	TotalCredits    decimal.Decimal       `json:"totalCredits"`
	Lines           []JournalLineResponse `json:"lines"`
	Ledger          []LedgerRowResponse   `json:"ledger"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalResponse converts a domain.JournalWithLedger to JournalResponse DTO.
func ToJournalResponse(jl domain.JournalWithLedger) JournalResponse {
	e := jl.Entry
	debits, credits := e.Totals()
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			LineNumber:  l.LineNumber,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Currency:    l.Currency,
			Dimensions:  l.Dimensions,
		}
	}
	ledger := make([]LedgerRowResponse, len(jl.Ledger))
	for i, g := range jl.Ledger {
		ledger[i] = LedgerRowResponse{
			ID:             g.ID,
			JournalLineID:  g.JournalLineID,
			AccountCode:    g.AccountCode,
			Debit:          g.Debit,
			Credit:         g.Credit,
			RunningBalance: g.RunningBalance,
		}
	}
	return JournalResponse{
		ID:              e.ID,
		FiscalPeriodID:  e.FiscalPeriodID,
		JournalCode:     e.JournalCode,
		Reference:       e.Reference,
		Description:     e.Description,
		Status:          string(e.Status),
		Source:          string(e.Source),
		TransactionDate: e.TransactionDate,
		PostingDate:     e.PostingDate,
		ReversalOf:      e.ReversalOf,
		Metadata:        e.Metadata,
		TotalDebits:     debits,
		TotalCredits:    credits,
		Lines:           lines,
		Ledger:          ledger,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToJournalResponses converts a slice of domain.JournalWithLedger.
func ToJournalResponses(items []domain.JournalWithLedger) []JournalResponse {
	responses := make([]JournalResponse, len(items))
	for i, item := range items {
		responses[i] = ToJournalResponse(item)
	}
	return responses
}
