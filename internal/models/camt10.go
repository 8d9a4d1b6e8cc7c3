// Package models provides the data structures used throughout the converter:
// the source (camt.053.001.10) and target (camt.053.001.08) XML shapes and the
// intermediate statement model the pipeline operates on.
package models

import (
	"encoding/xml"
	"strings"
)

// CAMT10Document is the root of a camt.053.001.10 document. Field tags match
// local element names only, so namespaced and namespace-free inputs both
// unmarshal, and elements the converter does not need are ignored.
type CAMT10Document struct {
	XMLName       xml.Name `xml:"Document"`
	BkToCstmrStmt struct {
		GrpHdr CAMT10GroupHeader `xml:"GrpHdr"`
		Stmt   []CAMT10Statement `xml:"Stmt"`
	} `xml:"BkToCstmrStmt"`
}

// CAMT10GroupHeader carries the message identification of the source file.
type CAMT10GroupHeader struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
}

// CAMT10Statement is one account statement block.
type CAMT10Statement struct {
	ID      string `xml:"Id"`
	CreDtTm string `xml:"CreDtTm"`
	FrToDt  struct {
		FrDtTm string `xml:"FrDtTm"`
		ToDtTm string `xml:"ToDtTm"`
	} `xml:"FrToDt"`
	Acct CAMT10Account   `xml:"Acct"`
	Bal  []CAMT10Balance `xml:"Bal"`
	Ntry []CAMT10Entry   `xml:"Ntry"`
}

// CAMT10Account identifies the reported account.
type CAMT10Account struct {
	ID struct {
		IBAN string `xml:"IBAN"`
		Othr struct {
			ID string `xml:"Id"`
		} `xml:"Othr"`
	} `xml:"Id"`
	Ccy  string `xml:"Ccy"`
	Ownr struct {
		Nm string `xml:"Nm"`
	} `xml:"Ownr"`
}

// CAMT10Balance is one balance report (opening, closing, interim).
type CAMT10Balance struct {
	Tp struct {
		CdOrPrtry struct {
			Cd string `xml:"Cd"`
		} `xml:"CdOrPrtry"`
	} `xml:"Tp"`
	Amt       XMLAmount  `xml:"Amt"`
	CdtDbtInd string     `xml:"CdtDbtInd"`
	Dt        DateChoice `xml:"Dt"`
}

// XMLAmount is an ISO 20022 amount: decimal text with a currency attribute.
type XMLAmount struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr"`
}

// DateChoice models DateAndDateTime2Choice: a calendar date or a date-time.
type DateChoice struct {
	Dt   string `xml:"Dt"`
	DtTm string `xml:"DtTm"`
}

// Raw returns whichever form the source carried, the date taking precedence.
func (d DateChoice) Raw() string {
	if d.Dt != "" {
		return strings.TrimSpace(d.Dt)
	}
	return strings.TrimSpace(d.DtTm)
}

// IsZero reports whether the source carried neither form.
func (d DateChoice) IsZero() bool {
	return d.Raw() == ""
}

// StatusChoice accepts the v10 entry status, which wraps the code in a Cd
// element; older producers emit it as bare text.
type StatusChoice struct {
	Cd   string `xml:"Cd"`
	Text string `xml:",chardata"`
}

// Code returns the status code in either encoding.
func (s StatusChoice) Code() string {
	if s.Cd != "" {
		return strings.TrimSpace(s.Cd)
	}
	return strings.TrimSpace(s.Text)
}

// CAMT10Entry is one statement line.
type CAMT10Entry struct {
	NtryRef     string       `xml:"NtryRef"`
	Amt         XMLAmount    `xml:"Amt"`
	CdtDbtInd   string       `xml:"CdtDbtInd"`
	Sts         StatusChoice `xml:"Sts"`
	BookgDt     DateChoice   `xml:"BookgDt"`
	ValDt       DateChoice   `xml:"ValDt"`
	AcctSvcrRef string       `xml:"AcctSvcrRef"`
	BkTxCd      struct {
		Domn struct {
			Cd   string `xml:"Cd"`
			Fmly struct {
				Cd        string `xml:"Cd"`
				SubFmlyCd string `xml:"SubFmlyCd"`
			} `xml:"Fmly"`
		} `xml:"Domn"`
		Prtry struct {
			Cd   string `xml:"Cd"`
			Issr string `xml:"Issr"`
		} `xml:"Prtry"`
	} `xml:"BkTxCd"`
	Chrgs struct {
		TtlChrgsAndTaxAmt XMLAmount `xml:"TtlChrgsAndTaxAmt"`
	} `xml:"Chrgs"`
	NtryDtls struct {
		TxDtls []CAMT10TxDetails `xml:"TxDtls"`
	} `xml:"NtryDtls"`
	AddtlNtryInf string `xml:"AddtlNtryInf"`
}

// CAMT10TxDetails is the per-transaction detail block inside an entry.
type CAMT10TxDetails struct {
	Refs struct {
		EndToEndID string `xml:"EndToEndId"`
		TxID       string `xml:"TxId"`
		InstrID    string `xml:"InstrId"`
	} `xml:"Refs"`
	RltdPties struct {
		Dbtr CAMT10PartyChoice `xml:"Dbtr"`
		Cdtr CAMT10PartyChoice `xml:"Cdtr"`
	} `xml:"RltdPties"`
	RmtInf struct {
		Ustrd []string `xml:"Ustrd"`
	} `xml:"RmtInf"`
}

// CAMT10PartyChoice accepts both the v10 Party40Choice shape (Pty/Nm) and the
// flat Nm used by older producers.
type CAMT10PartyChoice struct {
	Nm  string `xml:"Nm"`
	Pty struct {
		Nm string `xml:"Nm"`
	} `xml:"Pty"`
}

// Name returns the party name in either encoding.
func (p CAMT10PartyChoice) Name() string {
	if p.Pty.Nm != "" {
		return strings.TrimSpace(p.Pty.Nm)
	}
	return strings.TrimSpace(p.Nm)
}

// ProprietaryCode returns the proprietary bank transaction code, falling back
// to the formatted domain code when none is present.
func (e *CAMT10Entry) ProprietaryCode() string {
	if e.BkTxCd.Prtry.Cd != "" {
		return e.BkTxCd.Prtry.Cd
	}
	domain := e.BkTxCd.Domn.Cd
	if domain == "" {
		return ""
	}
	family := e.BkTxCd.Domn.Fmly.Cd
	if family == "" {
		return domain
	}
	return domain + "/" + family + "/" + e.BkTxCd.Domn.Fmly.SubFmlyCd
}

// Counterparty returns the name of the other party: the creditor for debits,
// the debtor for credits. Empty when the source carries none.
func (e *CAMT10Entry) Counterparty() string {
	if len(e.NtryDtls.TxDtls) == 0 {
		return ""
	}
	details := e.NtryDtls.TxDtls[0]
	if e.CdtDbtInd == DebitIndicator {
		return details.RltdPties.Cdtr.Name()
	}
	return details.RltdPties.Dbtr.Name()
}

// RemittanceInfo returns all unstructured remittance lines of the entry.
func (e *CAMT10Entry) RemittanceInfo() []string {
	var lines []string
	for _, details := range e.NtryDtls.TxDtls {
		for _, ustrd := range details.RmtInf.Ustrd {
			if strings.TrimSpace(ustrd) != "" {
				lines = append(lines, ustrd)
			}
		}
	}
	return lines
}

// Reference returns the explicit source-side reference identifier, if any.
func (e *CAMT10Entry) Reference() string {
	if e.AcctSvcrRef != "" {
		return strings.TrimSpace(e.AcctSvcrRef)
	}
	return strings.TrimSpace(e.NtryRef)
}
