// Package batch handles directory-level conversion
package batch

import (
	"fjacquet/camt-convert/cmd/root"
	"fjacquet/camt-convert/pkg/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every camt.053.001.10 file in a directory",
	Long: `Convert all .xml files in the input directory and write the results to
the output directory. Files already carrying the output suffix are skipped.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Directory with statement files")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "t", "", "Directory for converted files")
}

func batchFunc(cmd *cobra.Command, args []string) {
	if root.InputDir == "" || root.OutputDir == "" {
		root.Log.Fatal("Both --input-dir and --output-dir are required")
	}

	count, err := converter.BatchConvertWithOptions(root.InputDir, root.OutputDir, root.Opts)
	if err != nil {
		root.Log.Fatalf("Batch conversion failed: %v", err)
	}
	root.Log.Infof("Converted %d files successfully!", count)
}
