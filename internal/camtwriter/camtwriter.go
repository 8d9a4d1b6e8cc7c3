// Package camtwriter serializes camt.053.001.08 documents.
package camtwriter

import (
	"encoding/xml"

	"fjacquet/camt-convert/internal/models"
	"fjacquet/camt-convert/internal/parsererror"
)

// DefaultIndent is the indentation used for emitted documents.
const DefaultIndent = "    "

// Write serializes the document with the default four-space indentation.
func Write(doc *models.CAMT08Document) ([]byte, error) {
	return WriteIndent(doc, DefaultIndent)
}

// WriteIndent serializes the document with the given indentation. Output is
// the XML declaration followed by the indented document and a trailing
// newline. Marshalling the same document twice yields identical bytes.
func WriteIndent(doc *models.CAMT08Document, indent string) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, &parsererror.EmissionError{Err: err}
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
