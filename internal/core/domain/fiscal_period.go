package domain

import "time"

// FiscalPeriodStatus is the posting state of a fiscal period.
type FiscalPeriodStatus string

const (
	FiscalPeriodOpen    FiscalPeriodStatus = "open"
	FiscalPeriodClosed  FiscalPeriodStatus = "closed"
	FiscalPeriodPending FiscalPeriodStatus = "pending"
	FiscalPeriodLocked  FiscalPeriodStatus = "locked"
)

// FiscalPeriodCurrent is the alias callers may use instead of a concrete period id.
const FiscalPeriodCurrent = "current"

// FiscalPeriod is a tenant accounting period.
type FiscalPeriod struct {
	ID        string             `json:"id"`
	TenantID  string             `json:"tenantID"`
	Name      string             `json:"name"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Status    FiscalPeriodStatus `json:"status"`
}

// IsOpen reports whether entries may be posted into the period.
func (p FiscalPeriod) IsOpen() bool {
	return p.Status == FiscalPeriodOpen
}

// ResolveFiscalPeriodID maps the "current" alias (or an empty id) to the
// YYYY-MM period of the transaction date. Other ids pass through unchanged.
func ResolveFiscalPeriodID(periodID string, transactionDate time.Time) string {
	if periodID == "" || periodID == FiscalPeriodCurrent {
		return transactionDate.Format("2006-01")
	}
	return periodID
}
