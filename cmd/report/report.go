// Package report renders a CSV summary of a statement file
package report

import (
	"strings"

	"fjacquet/camt-convert/cmd/root"
	"fjacquet/camt-convert/internal/camtparser"
	"fjacquet/camt-convert/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Write a CSV summary of a camt.053.001.10 file",
	Long: `Parse a statement file and write one CSV row per entry, including the
reference each entry will carry after conversion.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = strings.TrimSuffix(input, ".xml") + "_report.csv"
	}

	stmt, err := camtparser.ParseFile(input)
	if err != nil {
		root.Log.Fatalf("Error parsing %s: %v", input, err)
	}

	if err := report.WriteCSV(report.Rows(stmt), output); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Infof("Report written to %s", output)
}
