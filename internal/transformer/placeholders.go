package transformer

// Fixed values stamped into the emitted document where the source schema
// carries no equivalent. These match what Swiss payment software expects to
// find in a camt.053.001.08 file.
const (
	PlaceholderBIC        = "XXXXXXXX"
	PlaceholderBankName   = "Bank"
	PlaceholderOrgID      = "XXX-000.000.000"
	PlaceholderOrgIssuer  = "ID"
	PlaceholderAddtlInf   = "SPS/2.1"
	PlaceholderSeqNumber  = "1"
	PlaceholderPageNumber = "1"
	PlaceholderLastPage   = "true"
	DefaultEntryStatus    = "BOOK"
)
