package models

import "encoding/xml"

// Namespaces stamped onto the emitted document root.
const (
	CAMT08Namespace = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.08"
	XSINamespace    = "http://www.w3.org/2001/XMLSchema-instance"
)

// CAMT08Document is the root of an emitted camt.053.001.08 document. Field
// order follows the schema sequence, which is what the marshaller emits.
type CAMT08Document struct {
	XMLName       xml.Name             `xml:"Document"`
	Xmlns         string               `xml:"xmlns,attr"`
	XmlnsXSI      string               `xml:"xmlns:xsi,attr"`
	BkToCstmrStmt CAMT08BankToCustomer `xml:"BkToCstmrStmt"`
}

// NewCAMT08Document creates a document root with the namespace attributes set.
func NewCAMT08Document() *CAMT08Document {
	return &CAMT08Document{
		Xmlns:    CAMT08Namespace,
		XmlnsXSI: XSINamespace,
	}
}

// CAMT08BankToCustomer is the statement message body.
type CAMT08BankToCustomer struct {
	GrpHdr CAMT08GroupHeader `xml:"GrpHdr"`
	Stmt   []CAMT08Statement `xml:"Stmt"`
}

// CAMT08GroupHeader is the message header of the emitted document.
type CAMT08GroupHeader struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
	MsgRcpt struct {
		ID struct {
			OrgID struct {
				AnyBIC string `xml:"AnyBIC"`
			} `xml:"OrgId"`
		} `xml:"Id"`
	} `xml:"MsgRcpt"`
	MsgPgntn struct {
		PgNb      string `xml:"PgNb"`
		LastPgInd string `xml:"LastPgInd"`
	} `xml:"MsgPgntn"`
	AddtlInf string `xml:"AddtlInf"`
}

// CAMT08Statement is one emitted account statement block.
type CAMT08Statement struct {
	ID           string            `xml:"Id"`
	ElctrncSeqNb string            `xml:"ElctrncSeqNb"`
	CreDtTm      string            `xml:"CreDtTm"`
	FrToDt       *CAMT08FromToDate `xml:"FrToDt,omitempty"`
	Acct         CAMT08Account     `xml:"Acct"`
	Bal          []CAMT08Balance   `xml:"Bal"`
	Ntry         []CAMT08Entry     `xml:"Ntry"`
}

// CAMT08FromToDate is the statement reporting period.
type CAMT08FromToDate struct {
	FrDtTm string `xml:"FrDtTm"`
	ToDtTm string `xml:"ToDtTm"`
}

// CAMT08Account identifies the reported account and its servicer.
type CAMT08Account struct {
	ID struct {
		IBAN string `xml:"IBAN"`
	} `xml:"Id"`
	Ccy  string         `xml:"Ccy"`
	Ownr *CAMT08Party   `xml:"Ownr,omitempty"`
	Svcr CAMT08Servicer `xml:"Svcr"`
}

// CAMT08Party is a named party.
type CAMT08Party struct {
	Nm string `xml:"Nm"`
}

// CAMT08Servicer is the account servicing institution.
type CAMT08Servicer struct {
	FinInstnID struct {
		BICFI string `xml:"BICFI"`
		Nm    string `xml:"Nm"`
		Othr  struct {
			ID   string `xml:"Id"`
			Issr string `xml:"Issr"`
		} `xml:"Othr"`
	} `xml:"FinInstnId"`
}

// CAMT08Balance is one emitted balance report.
type CAMT08Balance struct {
	Tp struct {
		CdOrPrtry struct {
			Cd string `xml:"Cd"`
		} `xml:"CdOrPrtry"`
	} `xml:"Tp"`
	Amt       XMLAmount `xml:"Amt"`
	CdtDbtInd string    `xml:"CdtDbtInd"`
	Dt        struct {
		Dt string `xml:"Dt"`
	} `xml:"Dt"`
}

// CAMT08Entry is one emitted statement line.
type CAMT08Entry struct {
	Amt       XMLAmount `xml:"Amt"`
	CdtDbtInd string    `xml:"CdtDbtInd"`
	Sts       struct {
		Cd string `xml:"Cd"`
	} `xml:"Sts"`
	BookgDt struct {
		Dt string `xml:"Dt"`
	} `xml:"BookgDt"`
	ValDt struct {
		Dt string `xml:"Dt"`
	} `xml:"ValDt"`
	AcctSvcrRef  string              `xml:"AcctSvcrRef"`
	BkTxCd       CAMT08BankTxCode    `xml:"BkTxCd"`
	Chrgs        *CAMT08Charges      `xml:"Chrgs,omitempty"`
	NtryDtls     *CAMT08EntryDetails `xml:"NtryDtls,omitempty"`
	AddtlNtryInf string              `xml:"AddtlNtryInf,omitempty"`
}

// CAMT08BankTxCode carries both the derived domain code and the original
// proprietary code.
type CAMT08BankTxCode struct {
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
}

// CAMT08Charges is the total charges block of an entry.
type CAMT08Charges struct {
	TtlChrgsAndTaxAmt XMLAmount `xml:"TtlChrgsAndTaxAmt"`
}

// CAMT08EntryDetails wraps the transaction detail of an entry.
type CAMT08EntryDetails struct {
	TxDtls CAMT08TxDetails `xml:"TxDtls"`
}

// CAMT08TxDetails is the emitted per-transaction detail block.
type CAMT08TxDetails struct {
	Refs struct {
		AcctSvcrRef string `xml:"AcctSvcrRef"`
	} `xml:"Refs"`
	RltdPties *CAMT08RelatedParties `xml:"RltdPties,omitempty"`
	RmtInf    *CAMT08Remittance     `xml:"RmtInf,omitempty"`
}

// CAMT08RelatedParties names the counterparty of a transaction.
type CAMT08RelatedParties struct {
	Dbtr *CAMT08PartyChoice `xml:"Dbtr,omitempty"`
	Cdtr *CAMT08PartyChoice `xml:"Cdtr,omitempty"`
}

// CAMT08PartyChoice is the Party40Choice shape used for related parties.
type CAMT08PartyChoice struct {
	Pty struct {
		Nm string `xml:"Nm"`
	} `xml:"Pty"`
}

// NewCAMT08PartyChoice creates a party choice wrapping the given name.
func NewCAMT08PartyChoice(name string) *CAMT08PartyChoice {
	p := &CAMT08PartyChoice{}
	p.Pty.Nm = name
	return p
}

// CAMT08Remittance carries unstructured remittance lines.
type CAMT08Remittance struct {
	Ustrd []string `xml:"Ustrd"`
}
