// Package validate checks whether a file is a camt.053 statement
package validate

import (
	"fjacquet/camt-convert/cmd/root"
	"fjacquet/camt-convert/pkg/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a file is a camt.053 statement",
	Run:   validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	ok, err := converter.ValidateFile(input)
	if err != nil {
		root.Log.Fatalf("Error validating %s: %v", input, err)
	}
	if !ok {
		root.Log.Fatalf("%s is not a camt.053 statement file", input)
	}
	root.Log.Infof("%s is a valid camt.053 statement file", input)
}
