// Package xmlutils contains the XPath probes used to recognize camt.053
// statement documents before full parsing.
package xmlutils

import (
	"bytes"
	"fmt"

	xmlpath "gopkg.in/xmlpath.v2"
)

// Paths probed during format validation.
const (
	StatementRootXPath = "//BkToCstmrStmt"
	StatementIDXPath   = "//BkToCstmrStmt/Stmt/Id"
)

// Exists reports whether the XPath expression matches anywhere in data.
func Exists(data []byte, expr string) (bool, error) {
	path, err := xmlpath.Compile(expr)
	if err != nil {
		return false, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	root, err := xmlpath.Parse(bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("error parsing XML: %w", err)
	}
	return path.Exists(root), nil
}
