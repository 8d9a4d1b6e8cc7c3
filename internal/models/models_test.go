package models

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoneyKeepsScale(t *testing.T) {
	m, err := ParseMoney("25.50", "CHF")
	require.NoError(t, err)
	assert.Equal(t, "25.50", m.Text())
	assert.Equal(t, "25.50 CHF", m.String())
}

func TestParseMoneyInvalid(t *testing.T) {
	_, err := ParseMoney("12,50", "CHF")
	assert.Error(t, err)
}

func TestDateChoicePrefersDate(t *testing.T) {
	d := DateChoice{Dt: "2025-01-10", DtTm: "2025-01-10T08:30:00Z"}
	assert.Equal(t, "2025-01-10", d.Raw())

	d = DateChoice{DtTm: "2025-01-10T08:30:00Z"}
	assert.Equal(t, "2025-01-10T08:30:00Z", d.Raw())

	assert.True(t, DateChoice{}.IsZero())
}

func TestStatusChoiceAcceptsBothEncodings(t *testing.T) {
	var wrapped StatusChoice
	require.NoError(t, xml.Unmarshal([]byte("<Sts><Cd>BOOK</Cd></Sts>"), &wrapped))
	assert.Equal(t, "BOOK", wrapped.Code())

	var bare StatusChoice
	require.NoError(t, xml.Unmarshal([]byte("<Sts>BOOK</Sts>"), &bare))
	assert.Equal(t, "BOOK", bare.Code())
}

func TestPartyChoiceAcceptsBothShapes(t *testing.T) {
	var nested CAMT10PartyChoice
	require.NoError(t, xml.Unmarshal([]byte("<Dbtr><Pty><Nm>Acme AG</Nm></Pty></Dbtr>"), &nested))
	assert.Equal(t, "Acme AG", nested.Name())

	var flat CAMT10PartyChoice
	require.NoError(t, xml.Unmarshal([]byte("<Dbtr><Nm>Acme AG</Nm></Dbtr>"), &flat))
	assert.Equal(t, "Acme AG", flat.Name())
}

func TestEntryCounterparty(t *testing.T) {
	var entry CAMT10Entry
	doc := `<Ntry>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <NtryDtls><TxDtls><RltdPties>
            <Dbtr><Pty><Nm>Payer</Nm></Pty></Dbtr>
            <Cdtr><Pty><Nm>Coffee shop</Nm></Pty></Cdtr>
        </RltdPties></TxDtls></NtryDtls>
    </Ntry>`
	require.NoError(t, xml.Unmarshal([]byte(doc), &entry))
	assert.Equal(t, "Coffee shop", entry.Counterparty())

	entry.CdtDbtInd = CreditIndicator
	assert.Equal(t, "Payer", entry.Counterparty())
}

func TestEntryProprietaryCode(t *testing.T) {
	var entry CAMT10Entry
	entry.BkTxCd.Prtry.Cd = "CARD_PAYMENT"
	assert.Equal(t, "CARD_PAYMENT", entry.ProprietaryCode())

	var domainOnly CAMT10Entry
	domainOnly.BkTxCd.Domn.Cd = "PMNT"
	domainOnly.BkTxCd.Domn.Fmly.Cd = "ICDT"
	domainOnly.BkTxCd.Domn.Fmly.SubFmlyCd = "ESCT"
	assert.Equal(t, "PMNT/ICDT/ESCT", domainOnly.ProprietaryCode())

	assert.Equal(t, "", (&CAMT10Entry{}).ProprietaryCode())
}

func TestEntryReferenceFallsBackToNtryRef(t *testing.T) {
	entry := CAMT10Entry{NtryRef: "REF-1"}
	assert.Equal(t, "REF-1", entry.Reference())

	entry.AcctSvcrRef = "SVCR-9"
	assert.Equal(t, "SVCR-9", entry.Reference())
}

func TestEntryDescription(t *testing.T) {
	e := Entry{RemittanceInfo: []string{"Invoice 42"}, AdditionalInfo: "extra"}
	assert.Equal(t, "Invoice 42", e.Description())

	e = Entry{AdditionalInfo: "extra"}
	assert.Equal(t, "extra", e.Description())
}

func TestAccountStatementBalances(t *testing.T) {
	acct := AccountStatement{
		Balances: []Balance{
			{Type: BalanceOpening, Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Type: BalanceClosing, Date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		},
	}
	require.NotNil(t, acct.OpeningBalance())
	assert.Equal(t, BalanceOpening, acct.OpeningBalance().Type)
	require.NotNil(t, acct.ClosingBalance())
	assert.Equal(t, BalanceClosing, acct.ClosingBalance().Type)

	empty := AccountStatement{}
	assert.Nil(t, empty.OpeningBalance())
}

func TestCAMT08DocumentNamespaces(t *testing.T) {
	doc := NewCAMT08Document()
	out, err := xml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08"`)
	assert.Contains(t, string(out), `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
}
