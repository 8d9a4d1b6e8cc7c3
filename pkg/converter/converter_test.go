package converter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/camt-convert/internal/logging"
)

const sampleCAMT10 = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.10">
    <BkToCstmrStmt>
        <GrpHdr>
            <MsgId>MSG-2025-001</MsgId>
            <CreDtTm>2025-01-31T06:00:00+01:00</CreDtTm>
        </GrpHdr>
        <Stmt>
            <Id>STMT-2025-001</Id>
            <CreDtTm>2025-01-31T06:00:00+01:00</CreDtTm>
            <Acct>
                <Id><IBAN>CH9300762011623852957</IBAN></Id>
                <Ccy>CHF</Ccy>
                <Ownr><Nm>Jane Example</Nm></Ownr>
            </Acct>
            <Bal>
                <Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp>
                <Amt Ccy="CHF">100.00</Amt>
                <CdtDbtInd>CRDT</CdtDbtInd>
                <Dt><Dt>2025-01-01</Dt></Dt>
            </Bal>
            <Bal>
                <Tp><CdOrPrtry><Cd>CLBD</Cd></CdOrPrtry></Tp>
                <Amt Ccy="CHF">74.50</Amt>
                <CdtDbtInd>CRDT</CdtDbtInd>
                <Dt><Dt>2025-01-31</Dt></Dt>
            </Bal>
            <Ntry>
                <Amt Ccy="CHF">25.50</Amt>
                <CdtDbtInd>DBIT</CdtDbtInd>
                <Sts><Cd>BOOK</Cd></Sts>
                <BookgDt><Dt>2025-01-10</Dt></BookgDt>
                <ValDt><Dt>2025-01-10</Dt></ValDt>
                <BkTxCd><Prtry><Cd>CARD_PAYMENT</Cd></Prtry></BkTxCd>
                <NtryDtls>
                    <TxDtls>
                        <RltdPties><Cdtr><Pty><Nm>Coffee shop</Nm></Pty></Cdtr></RltdPties>
                        <RmtInf><Ustrd>Coffee shop</Ustrd></RmtInf>
                    </TxDtls>
                </NtryDtls>
            </Ntry>
        </Stmt>
    </BkToCstmrStmt>
</Document>`

func TestConvert(t *testing.T) {
	out, err := Convert([]byte(sampleCAMT10))
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08"`)
	assert.Contains(t, text, "<MsgId>MSG-2025-001</MsgId>")
	assert.Contains(t, text, "<IBAN>CH9300762011623852957</IBAN>")
	assert.Contains(t, text, `<Amt Ccy="CHF">100.00</Amt>`)
	assert.Contains(t, text, `<Amt Ccy="CHF">74.50</Amt>`)
	assert.Contains(t, text, `<Amt Ccy="CHF">25.50</Amt>`)
	assert.Contains(t, text, "<CdtDbtInd>DBIT</CdtDbtInd>")
	assert.Contains(t, text, "<Dt>2025-01-10</Dt>")
	assert.Contains(t, text, "<Nm>Coffee shop</Nm>")
	assert.Contains(t, text, "<AnyBIC>XXXXXXXX</AnyBIC>")
	assert.Contains(t, text, "<AddtlInf>SPS/2.1</AddtlInf>")
	assert.Contains(t, text, "<Cd>CCRD</Cd>")

	// The entry carries no reference in the source, so one is derived.
	assert.Regexp(t, `<AcctSvcrRef>TX\d{10}</AcctSvcrRef>`, text)
}

func TestConvertDeterministic(t *testing.T) {
	first, err := Convert([]byte(sampleCAMT10))
	require.NoError(t, err)
	second, err := Convert([]byte(sampleCAMT10))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvertMalformed(t *testing.T) {
	_, err := Convert([]byte("not xml at all"))
	assert.Error(t, err)
}

func TestConvertFileDerivesOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "statement.xml")
	require.NoError(t, os.WriteFile(input, []byte(sampleCAMT10), 0o644))

	require.NoError(t, ConvertFile(input, ""))

	out, err := os.ReadFile(filepath.Join(dir, "statement_08.xml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"))
}

func TestConvertFileLeavesNoArtifactOnFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.xml")
	require.NoError(t, os.WriteFile(input, []byte("<Document><BkToCstmrStmt>"), 0o644))

	err := ConvertFile(input, "")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "broken_08.xml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "statement.xml")
	require.NoError(t, os.WriteFile(input, []byte(sampleCAMT10), 0o644))

	ok, err := ValidateFile(input)
	require.NoError(t, err)
	assert.True(t, ok)

	other := filepath.Join(dir, "other.xml")
	require.NoError(t, os.WriteFile(other, []byte("<Document><Other/></Document>"), 0o644))
	ok, err = ValidateFile(other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBatchConvert(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	for _, name := range []string{"jan.xml", "feb.xml"} {
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, name), []byte(sampleCAMT10), 0o644))
	}
	// Ignored: not an XML file, and an earlier run's output.
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "dec_08.xml"), []byte(sampleCAMT10), 0o644))

	count, err := BatchConvert(inputDir, outputDir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.FileExists(t, filepath.Join(outputDir, "jan_08.xml"))
	assert.FileExists(t, filepath.Join(outputDir, "feb_08.xml"))
}

func TestBatchConvertSkipsFailingFile(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "good.xml"), []byte(sampleCAMT10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad.xml"), []byte("<Document>"), 0o644))

	mock := logging.NewMockLogger()
	SetLogger(mock)
	defer SetLogger(logging.GetLogger())

	count, err := BatchConvert(inputDir, outputDir)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.FileExists(t, filepath.Join(outputDir, "good_08.xml"))
	assert.NoFileExists(t, filepath.Join(outputDir, "bad_08.xml"))
	assert.Contains(t, mock.Messages(), "skipping file that failed to convert")
}

func TestBatchConvertEmptyDir(t *testing.T) {
	count, err := BatchConvert(t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
