package models

import (
	"strings"
	"time"
)

// Balance type codes carried through the conversion.
const (
	BalanceOpening = "OPBD"
	BalanceClosing = "CLBD"
	BalanceInterim = "ITBD"
)

// Credit and debit indicators.
const (
	CreditIndicator = "CRDT"
	DebitIndicator  = "DBIT"
)

// Statement is the parsed, schema-independent view of a bank-to-customer
// statement message. The parser produces it and the transformer consumes it.
type Statement struct {
	MsgID     string
	CreatedAt time.Time
	Accounts  []AccountStatement
}

// AccountStatement is one account's statement within a message.
type AccountStatement struct {
	ID        string
	IBAN      string
	OwnerName string
	Currency  string
	CreatedAt time.Time
	FromDate  time.Time
	ToDate    time.Time
	Balances  []Balance
	Entries   []Entry
}

// Balance is one reported balance.
type Balance struct {
	Type        string
	Amount      Money
	CreditDebit string
	Date        time.Time
}

// Entry is one statement line.
type Entry struct {
	Amount         Money
	CreditDebit    string
	Status         string
	BookingDate    time.Time
	ValueDate      time.Time
	BankTxCode     string
	Reference      string
	RemittanceInfo []string
	AdditionalInfo string
	Counterparty   string
	Charges        *Money
}

// Description returns the text describing the entry: the first remittance
// line when present, otherwise the additional entry information.
func (e Entry) Description() string {
	for _, line := range e.RemittanceInfo {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return e.AdditionalInfo
}

// IsDebit reports whether the entry decreases the account balance.
func (e Entry) IsDebit() bool {
	return e.CreditDebit == DebitIndicator
}

// OpeningBalance returns the opening balance, or nil when none was reported.
func (a *AccountStatement) OpeningBalance() *Balance {
	return a.balanceOfType(BalanceOpening)
}

// ClosingBalance returns the closing balance, or nil when none was reported.
func (a *AccountStatement) ClosingBalance() *Balance {
	return a.balanceOfType(BalanceClosing)
}

func (a *AccountStatement) balanceOfType(code string) *Balance {
	for i := range a.Balances {
		if a.Balances[i].Type == code {
			return &a.Balances[i]
		}
	}
	return nil
}
