package transformer

import (
	"fmt"
	"hash/fnv"
	"strings"

	"fjacquet/camt-convert/internal/dateutils"
	"fjacquet/camt-convert/internal/models"
)

// referenceModulus keeps synthetic references at ten decimal digits.
const referenceModulus = 10_000_000_000

// SyntheticReference derives a stable transaction reference for an entry that
// carries none. The hash covers the entry's identifying fields plus its
// position in the statement, so two otherwise identical entries still get
// distinct references, and re-running the conversion reproduces them exactly.
func SyntheticReference(e *models.Entry, position int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s|%d",
		dateutils.FormatDate(e.BookingDate),
		e.Amount.Text(),
		e.Amount.Currency,
		e.CreditDebit,
		e.BankTxCode,
		normalizeWhitespace(e.Description()),
		position,
	)
	return fmt.Sprintf("TX%010d", h.Sum64()%referenceModulus)
}

// normalizeWhitespace collapses runs of whitespace to single spaces so that
// formatting differences in the source do not change the reference.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
