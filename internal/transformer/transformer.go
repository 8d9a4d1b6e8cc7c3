// Package transformer builds a camt.053.001.08 document from the parsed
// statement model.
package transformer

import (
	"fjacquet/camt-convert/internal/dateutils"
	"fjacquet/camt-convert/internal/logging"
	"fjacquet/camt-convert/internal/models"
)

// Transformer converts parsed statements into the target document shape.
type Transformer struct {
	logger logging.Logger
	codes  *CodeMapper
}

// NewTransformer creates a transformer with the built-in code mapping.
func NewTransformer(logger logging.Logger) *Transformer {
	return NewTransformerWithCodes(logger, nil)
}

// NewTransformerWithCodes creates a transformer with a custom code mapping.
func NewTransformerWithCodes(logger logging.Logger, codes *CodeMapper) *Transformer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if codes == nil {
		codes = DefaultCodeMapper()
	}
	return &Transformer{logger: logger, codes: codes}
}

// Transform builds the target document for a parsed statement.
func (t *Transformer) Transform(stmt *models.Statement) *models.CAMT08Document {
	doc := models.NewCAMT08Document()

	header := &doc.BkToCstmrStmt.GrpHdr
	header.MsgID = stmt.MsgID
	header.CreDtTm = dateutils.FormatDateTime(stmt.CreatedAt)
	header.MsgRcpt.ID.OrgID.AnyBIC = PlaceholderBIC
	header.MsgPgntn.PgNb = PlaceholderPageNumber
	header.MsgPgntn.LastPgInd = PlaceholderLastPage
	header.AddtlInf = PlaceholderAddtlInf

	for i := range stmt.Accounts {
		doc.BkToCstmrStmt.Stmt = append(doc.BkToCstmrStmt.Stmt,
			t.transformAccount(stmt, &stmt.Accounts[i]))
	}

	t.logger.Debug("transformed statement",
		logging.Field{Key: "msg_id", Value: stmt.MsgID},
		logging.Field{Key: "statements", Value: len(doc.BkToCstmrStmt.Stmt)})
	return doc
}

func (t *Transformer) transformAccount(stmt *models.Statement, src *models.AccountStatement) models.CAMT08Statement {
	out := models.CAMT08Statement{
		ID:           src.ID,
		ElctrncSeqNb: PlaceholderSeqNumber,
	}

	createdAt := src.CreatedAt
	if createdAt.IsZero() {
		createdAt = src.FromDate
	}
	if createdAt.IsZero() {
		createdAt = stmt.CreatedAt
	}
	out.CreDtTm = dateutils.FormatDateTime(createdAt)

	if !src.FromDate.IsZero() || !src.ToDate.IsZero() {
		out.FrToDt = &models.CAMT08FromToDate{
			FrDtTm: dateutils.FormatDateTime(src.FromDate),
			ToDtTm: dateutils.FormatDateTime(src.ToDate),
		}
	}

	out.Acct.ID.IBAN = src.IBAN
	out.Acct.Ccy = src.Currency
	if src.OwnerName != "" {
		out.Acct.Ownr = &models.CAMT08Party{Nm: src.OwnerName}
	}
	out.Acct.Svcr.FinInstnID.BICFI = PlaceholderBIC
	out.Acct.Svcr.FinInstnID.Nm = PlaceholderBankName
	out.Acct.Svcr.FinInstnID.Othr.ID = PlaceholderOrgID
	out.Acct.Svcr.FinInstnID.Othr.Issr = PlaceholderOrgIssuer

	for i := range src.Balances {
		out.Bal = append(out.Bal, transformBalance(&src.Balances[i]))
	}
	for i := range src.Entries {
		out.Ntry = append(out.Ntry, t.transformEntry(&src.Entries[i], i))
	}
	return out
}

func transformBalance(src *models.Balance) models.CAMT08Balance {
	var out models.CAMT08Balance
	out.Tp.CdOrPrtry.Cd = src.Type
	out.Amt = models.XMLAmount{Value: src.Amount.Text(), Ccy: src.Amount.Currency}
	out.CdtDbtInd = src.CreditDebit
	out.Dt.Dt = dateutils.FormatDate(src.Date)
	return out
}

func (t *Transformer) transformEntry(src *models.Entry, position int) models.CAMT08Entry {
	var out models.CAMT08Entry
	out.Amt = models.XMLAmount{Value: src.Amount.Text(), Ccy: src.Amount.Currency}
	out.CdtDbtInd = src.CreditDebit

	out.Sts.Cd = src.Status
	if out.Sts.Cd == "" {
		out.Sts.Cd = DefaultEntryStatus
	}

	out.BookgDt.Dt = dateutils.FormatDate(src.BookingDate)
	out.ValDt.Dt = dateutils.FormatDate(src.ValueDate)

	reference := src.Reference
	if reference == "" {
		reference = SyntheticReference(src, position)
	}
	out.AcctSvcrRef = reference

	domain, family, subFamily := t.codes.Resolve(src.BankTxCode)
	out.BkTxCd.Domn.Cd = domain
	out.BkTxCd.Domn.Fmly.Cd = family
	out.BkTxCd.Domn.Fmly.SubFmlyCd = subFamily
	if src.BankTxCode != "" {
		out.BkTxCd.Prtry.Cd = src.BankTxCode
		out.BkTxCd.Prtry.Issr = PlaceholderOrgIssuer
	}

	if src.Charges != nil {
		out.Chrgs = &models.CAMT08Charges{
			TtlChrgsAndTaxAmt: models.XMLAmount{
				Value: src.Charges.Text(),
				Ccy:   src.Charges.Currency,
			},
		}
	}

	if src.Counterparty != "" || len(src.RemittanceInfo) > 0 {
		details := &models.CAMT08EntryDetails{}
		details.TxDtls.Refs.AcctSvcrRef = reference
		if src.Counterparty != "" {
			parties := &models.CAMT08RelatedParties{}
			if src.IsDebit() {
				parties.Cdtr = models.NewCAMT08PartyChoice(src.Counterparty)
			} else {
				parties.Dbtr = models.NewCAMT08PartyChoice(src.Counterparty)
			}
			details.TxDtls.RltdPties = parties
		}
		if len(src.RemittanceInfo) > 0 {
			details.TxDtls.RmtInf = &models.CAMT08Remittance{Ustrd: src.RemittanceInfo}
		}
		out.NtryDtls = details
	}

	out.AddtlNtryInf = src.AdditionalInfo
	return out
}
