package domain

import "time"

// ArchivedSession is the immutable copy of a bank import session.
type ArchivedSession struct {
	BankImportSession
	ArchivedTotals LedgerTotals `json:"archivedTotals"`
}

// ArchivedJournalEntry is the immutable copy of a posted journal entry.
type ArchivedJournalEntry struct {
	JournalEntry
	SessionID  string    `json:"sessionID"`
	ArchivedAt time.Time `json:"archivedAt"`
	ArchivedBy string    `json:"archivedBy"`
}

// ArchivedGLEntry is the immutable copy of a ledger row.
type ArchivedGLEntry struct {
	GeneralLedgerEntry
	SessionID  string    `json:"sessionID"`
	ArchivedAt time.Time `json:"archivedAt"`
}

// ArchivedSessionDetail is the read model behind archive browsing.
type ArchivedSessionDetail struct {
	Session   ArchivedSession        `json:"session"`
	Entries   []ArchivedJournalEntry `json:"entries"`
	GLEntries []ArchivedGLEntry      `json:"glEntries"`
}
