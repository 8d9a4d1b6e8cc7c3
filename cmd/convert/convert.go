// Package convert handles single file conversion
package convert

import (
	"fjacquet/camt-convert/cmd/root"
	"fjacquet/camt-convert/internal/transformer"
	"fjacquet/camt-convert/pkg/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a camt.053.001.10 file to camt.053.001.08",
	Long: `Convert a single camt.053.001.10 statement file. Without --output the
result is written next to the input with "_08" appended to the file name.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.CodeRules, "code-rules", "", "YAML file with bank transaction code mapping rules")
}

func convertFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	if root.SharedFlags.Validate {
		ok, err := converter.ValidateFile(input)
		if err != nil {
			root.Log.Fatalf("Error validating %s: %v", input, err)
		}
		if !ok {
			root.Log.Fatalf("%s is not a camt.053 statement file", input)
		}
	}

	opts := root.Opts
	if root.CodeRules != "" {
		mapper, err := transformer.LoadCodeMapper(root.CodeRules)
		if err != nil {
			root.Log.Fatalf("Error loading code mapping rules: %v", err)
		}
		opts.CodeMapper = mapper
	}

	if err := converter.ConvertFileWithOptions(input, root.SharedFlags.Output, opts); err != nil {
		root.Log.Fatalf("Conversion failed: %v", err)
	}
	root.Log.Info("Conversion completed successfully!")
}
