// Package camtparser reads camt.053.001.10 statement files into the
// intermediate statement model.
package camtparser

import (
	"encoding/xml"
	"fmt"
	"strings"

	"fjacquet/camt-convert/internal/currencyutils"
	"fjacquet/camt-convert/internal/dateutils"
	"fjacquet/camt-convert/internal/fileutils"
	"fjacquet/camt-convert/internal/logging"
	"fjacquet/camt-convert/internal/models"
	"fjacquet/camt-convert/internal/parsererror"
	"fjacquet/camt-convert/internal/xmlutils"
)

// Parser parses camt.053.001.10 documents.
type Parser struct {
	logger         logging.Logger
	strictCurrency bool
}

// NewParser creates a parser with the given logger. Currency consistency
// between the account and its entries is enforced.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{logger: logger, strictCurrency: true}
}

// SetStrictCurrency toggles the currency consistency check.
func (p *Parser) SetStrictCurrency(strict bool) {
	p.strictCurrency = strict
}

// Parse decodes a statement document from raw XML.
func (p *Parser) Parse(data []byte) (*models.Statement, error) {
	var doc models.CAMT10Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &parsererror.MalformedInputError{Err: err}
	}
	if doc.XMLName.Local != "Document" {
		return nil, &parsererror.MalformedInputError{
			Err: fmt.Errorf("unexpected root element <%s>", doc.XMLName.Local),
		}
	}
	if len(doc.BkToCstmrStmt.Stmt) == 0 {
		return nil, &parsererror.MissingFieldError{Path: "BkToCstmrStmt/Stmt", Index: -1}
	}

	stmt := &models.Statement{MsgID: strings.TrimSpace(doc.BkToCstmrStmt.GrpHdr.MsgID)}
	if stmt.MsgID == "" {
		return nil, &parsererror.MissingFieldError{Path: "BkToCstmrStmt/GrpHdr/MsgId", Index: -1}
	}

	if strings.TrimSpace(doc.BkToCstmrStmt.GrpHdr.CreDtTm) == "" {
		return nil, &parsererror.MissingFieldError{Path: "BkToCstmrStmt/GrpHdr/CreDtTm", Index: -1}
	}
	createdAt, err := dateutils.ParseISO(doc.BkToCstmrStmt.GrpHdr.CreDtTm)
	if err != nil {
		return nil, &parsererror.UnsupportedValueError{
			Path:   "BkToCstmrStmt/GrpHdr/CreDtTm",
			Value:  doc.BkToCstmrStmt.GrpHdr.CreDtTm,
			Reason: "not an ISO 8601 date-time",
			Err:    err,
		}
	}
	stmt.CreatedAt = createdAt

	for i := range doc.BkToCstmrStmt.Stmt {
		account, err := p.buildAccount(&doc.BkToCstmrStmt.Stmt[i], i)
		if err != nil {
			return nil, err
		}
		stmt.Accounts = append(stmt.Accounts, *account)
	}

	p.logger.Debug("parsed statement document",
		logging.Field{Key: "msg_id", Value: stmt.MsgID},
		logging.Field{Key: "accounts", Value: len(stmt.Accounts)})
	return stmt, nil
}

func (p *Parser) buildAccount(src *models.CAMT10Statement, index int) (*models.AccountStatement, error) {
	account := &models.AccountStatement{
		ID:        strings.TrimSpace(src.ID),
		IBAN:      strings.TrimSpace(src.Acct.ID.IBAN),
		OwnerName: strings.TrimSpace(src.Acct.Ownr.Nm),
		Currency:  strings.TrimSpace(src.Acct.Ccy),
	}
	if account.ID == "" {
		return nil, &parsererror.MissingFieldError{Path: "Stmt/Id", Index: index}
	}
	if account.IBAN == "" {
		return nil, &parsererror.MissingFieldError{Path: "Stmt/Acct/Id/IBAN", Index: index}
	}

	if src.CreDtTm != "" {
		createdAt, err := dateutils.ParseISO(src.CreDtTm)
		if err != nil {
			return nil, &parsererror.UnsupportedValueError{
				Path:   fmt.Sprintf("Stmt[%d]/CreDtTm", index),
				Value:  src.CreDtTm,
				Reason: "not an ISO 8601 date-time",
				Err:    err,
			}
		}
		account.CreatedAt = createdAt
	}
	if src.FrToDt.FrDtTm != "" {
		from, err := dateutils.ParseISO(src.FrToDt.FrDtTm)
		if err != nil {
			return nil, &parsererror.UnsupportedValueError{
				Path:   fmt.Sprintf("Stmt[%d]/FrToDt/FrDtTm", index),
				Value:  src.FrToDt.FrDtTm,
				Reason: "not an ISO 8601 date-time",
				Err:    err,
			}
		}
		account.FromDate = from
	}
	if src.FrToDt.ToDtTm != "" {
		to, err := dateutils.ParseISO(src.FrToDt.ToDtTm)
		if err != nil {
			return nil, &parsererror.UnsupportedValueError{
				Path:   fmt.Sprintf("Stmt[%d]/FrToDt/ToDtTm", index),
				Value:  src.FrToDt.ToDtTm,
				Reason: "not an ISO 8601 date-time",
				Err:    err,
			}
		}
		account.ToDate = to
	}

	if len(src.Bal) == 0 {
		return nil, &parsererror.MissingFieldError{Path: "Stmt/Bal", Index: index}
	}
	for j := range src.Bal {
		balance, err := p.buildBalance(&src.Bal[j], index, j)
		if err != nil {
			return nil, err
		}
		if account.Currency == "" {
			account.Currency = balance.Amount.Currency
		}
		if p.strictCurrency && balance.Amount.Currency != account.Currency {
			return nil, &parsererror.UnsupportedValueError{
				Path:   fmt.Sprintf("Stmt[%d]/Bal[%d]/Amt", index, j),
				Value:  balance.Amount.Currency,
				Reason: fmt.Sprintf("currency differs from account currency %s", account.Currency),
			}
		}
		account.Balances = append(account.Balances, *balance)
	}

	if account.Currency != "" && !currencyutils.ValidCurrencyCode(account.Currency) {
		return nil, &parsererror.UnsupportedValueError{
			Path:   fmt.Sprintf("Stmt[%d]/Acct/Ccy", index),
			Value:  account.Currency,
			Reason: "not an ISO 4217 currency code",
		}
	}

	for j := range src.Ntry {
		entry, err := p.buildEntry(&src.Ntry[j], index, j)
		if err != nil {
			return nil, err
		}
		if p.strictCurrency && account.Currency != "" && entry.Amount.Currency != account.Currency {
			return nil, &parsererror.UnsupportedValueError{
				Path:   fmt.Sprintf("Stmt[%d]/Ntry[%d]/Amt", index, j),
				Value:  entry.Amount.Currency,
				Reason: fmt.Sprintf("currency differs from account currency %s", account.Currency),
			}
		}
		account.Entries = append(account.Entries, *entry)
	}

	return account, nil
}

func (p *Parser) buildBalance(src *models.CAMT10Balance, stmtIndex, balIndex int) (*models.Balance, error) {
	code := strings.TrimSpace(src.Tp.CdOrPrtry.Cd)
	if code == "" {
		return nil, &parsererror.MissingFieldError{
			Path:  fmt.Sprintf("Stmt[%d]/Bal/Tp/CdOrPrtry/Cd", stmtIndex),
			Index: balIndex,
		}
	}

	amount, err := p.parseAmount(src.Amt, fmt.Sprintf("Stmt[%d]/Bal[%d]/Amt", stmtIndex, balIndex))
	if err != nil {
		return nil, err
	}

	if src.Dt.IsZero() {
		return nil, &parsererror.MissingFieldError{
			Path:  fmt.Sprintf("Stmt[%d]/Bal/Dt", stmtIndex),
			Index: balIndex,
		}
	}
	date, err := dateutils.ParseISO(src.Dt.Raw())
	if err != nil {
		return nil, &parsererror.UnsupportedValueError{
			Path:   fmt.Sprintf("Stmt[%d]/Bal[%d]/Dt", stmtIndex, balIndex),
			Value:  src.Dt.Raw(),
			Reason: "not an ISO 8601 date",
			Err:    err,
		}
	}

	return &models.Balance{
		Type:        code,
		Amount:      amount,
		CreditDebit: strings.TrimSpace(src.CdtDbtInd),
		Date:        date,
	}, nil
}

func (p *Parser) buildEntry(src *models.CAMT10Entry, stmtIndex, ntryIndex int) (*models.Entry, error) {
	amount, err := p.parseAmount(src.Amt, fmt.Sprintf("Stmt[%d]/Ntry[%d]/Amt", stmtIndex, ntryIndex))
	if err != nil {
		return nil, err
	}

	indicator := strings.TrimSpace(src.CdtDbtInd)
	if indicator != models.CreditIndicator && indicator != models.DebitIndicator {
		return nil, &parsererror.UnsupportedValueError{
			Path:   fmt.Sprintf("Stmt[%d]/Ntry[%d]/CdtDbtInd", stmtIndex, ntryIndex),
			Value:  indicator,
			Reason: "expected CRDT or DBIT",
		}
	}

	if src.BookgDt.IsZero() {
		return nil, &parsererror.MissingFieldError{
			Path:  fmt.Sprintf("Stmt[%d]/Ntry/BookgDt", stmtIndex),
			Index: ntryIndex,
		}
	}
	bookingDate, err := dateutils.ParseISO(src.BookgDt.Raw())
	if err != nil {
		return nil, &parsererror.UnsupportedValueError{
			Path:   fmt.Sprintf("Stmt[%d]/Ntry[%d]/BookgDt", stmtIndex, ntryIndex),
			Value:  src.BookgDt.Raw(),
			Reason: "not an ISO 8601 date",
			Err:    err,
		}
	}

	valueDate := bookingDate
	if !src.ValDt.IsZero() {
		valueDate, err = dateutils.ParseISO(src.ValDt.Raw())
		if err != nil {
			return nil, &parsererror.UnsupportedValueError{
				Path:   fmt.Sprintf("Stmt[%d]/Ntry[%d]/ValDt", stmtIndex, ntryIndex),
				Value:  src.ValDt.Raw(),
				Reason: "not an ISO 8601 date",
				Err:    err,
			}
		}
	}

	var charges *models.Money
	if src.Chrgs.TtlChrgsAndTaxAmt.Value != "" {
		chargeAmount, err := p.parseAmount(src.Chrgs.TtlChrgsAndTaxAmt,
			fmt.Sprintf("Stmt[%d]/Ntry[%d]/Chrgs/TtlChrgsAndTaxAmt", stmtIndex, ntryIndex))
		if err != nil {
			return nil, err
		}
		charges = &chargeAmount
	}

	return &models.Entry{
		Amount:         amount,
		CreditDebit:    indicator,
		Status:         src.Sts.Code(),
		BookingDate:    bookingDate,
		ValueDate:      valueDate,
		BankTxCode:     src.ProprietaryCode(),
		Reference:      src.Reference(),
		RemittanceInfo: src.RemittanceInfo(),
		AdditionalInfo: strings.TrimSpace(src.AddtlNtryInf),
		Counterparty:   src.Counterparty(),
		Charges:        charges,
	}, nil
}

func (p *Parser) parseAmount(src models.XMLAmount, path string) (models.Money, error) {
	if strings.TrimSpace(src.Value) == "" {
		return models.Money{}, &parsererror.MissingFieldError{Path: path, Index: -1}
	}
	amount, err := currencyutils.ParseAmount(src.Value)
	if err != nil {
		return models.Money{}, &parsererror.UnsupportedValueError{
			Path:   path,
			Value:  src.Value,
			Reason: "not a decimal amount",
			Err:    err,
		}
	}
	currency := strings.TrimSpace(src.Ccy)
	if !currencyutils.ValidCurrencyCode(currency) {
		return models.Money{}, &parsererror.UnsupportedValueError{
			Path:   path,
			Value:  currency,
			Reason: "not an ISO 4217 currency code",
		}
	}
	return models.NewMoney(amount, currency), nil
}

// ParseFile reads and parses the statement file at path.
func (p *Parser) ParseFile(path string) (*models.Statement, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}

// ValidateFormat probes whether the file looks like a camt.053 statement
// without fully parsing it.
func (p *Parser) ValidateFormat(path string) (bool, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return false, err
	}
	ok, err := xmlutils.Exists(data, xmlutils.StatementRootXPath)
	if err != nil || !ok {
		return false, err
	}
	return xmlutils.Exists(data, xmlutils.StatementIDXPath)
}

// Parse decodes a statement document using a default parser.
func Parse(data []byte) (*models.Statement, error) {
	return NewParser(nil).Parse(data)
}

// ParseFile parses the statement file at path using a default parser.
func ParseFile(path string) (*models.Statement, error) {
	return NewParser(nil).ParseFile(path)
}

// ValidateFormat probes the file at path using a default parser.
func ValidateFormat(path string) (bool, error) {
	return NewParser(nil).ValidateFormat(path)
}
