// Package report renders a CSV summary of a parsed statement, one row per
// entry. The summary is meant for reconciliation, not for import.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/camt-convert/internal/dateutils"
	"fjacquet/camt-convert/internal/models"
	"fjacquet/camt-convert/internal/transformer"
)

// Row is one CSV line of the conversion report.
type Row struct {
	Statement    string `csv:"Statement"`
	IBAN         string `csv:"IBAN"`
	BookingDate  string `csv:"BookingDate"`
	ValueDate    string `csv:"ValueDate"`
	Amount       string `csv:"Amount"`
	Currency     string `csv:"Currency"`
	CreditDebit  string `csv:"CreditDebit"`
	Reference    string `csv:"Reference"`
	BankTxCode   string `csv:"BankTxCode"`
	Counterparty string `csv:"Counterparty"`
	Description  string `csv:"Description"`
}

// Rows flattens a statement into report rows. References match what the
// conversion emits, including derived ones.
func Rows(stmt *models.Statement) []Row {
	var rows []Row
	for i := range stmt.Accounts {
		acct := &stmt.Accounts[i]
		for j := range acct.Entries {
			entry := &acct.Entries[j]
			reference := entry.Reference
			if reference == "" {
				reference = transformer.SyntheticReference(entry, j)
			}
			rows = append(rows, Row{
				Statement:    acct.ID,
				IBAN:         acct.IBAN,
				BookingDate:  dateutils.FormatDate(entry.BookingDate),
				ValueDate:    dateutils.FormatDate(entry.ValueDate),
				Amount:       entry.Amount.Text(),
				Currency:     entry.Amount.Currency,
				CreditDebit:  entry.CreditDebit,
				Reference:    reference,
				BankTxCode:   entry.BankTxCode,
				Counterparty: entry.Counterparty,
				Description:  entry.Description(),
			})
		}
	}
	return rows
}

// WriteCSV writes the report rows to path.
func WriteCSV(rows []Row, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating report directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
