// Package converter is the public entry point: it converts camt.053.001.10
// statement files into camt.053.001.08.
package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"fjacquet/camt-convert/internal/camtparser"
	"fjacquet/camt-convert/internal/camtwriter"
	"fjacquet/camt-convert/internal/fileutils"
	"fjacquet/camt-convert/internal/logging"
	"fjacquet/camt-convert/internal/transformer"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Options controls the conversion.
type Options struct {
	// OutputSuffix is appended to the input file stem when no explicit
	// output path is given.
	OutputSuffix string

	// Indent is the indentation of the emitted XML.
	Indent string

	// CodeMapper resolves proprietary bank transaction codes. Nil means the
	// built-in mapping.
	CodeMapper *transformer.CodeMapper

	// StrictCurrency rejects entries whose currency differs from the account.
	StrictCurrency bool
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		OutputSuffix:   "_08",
		Indent:         camtwriter.DefaultIndent,
		StrictCurrency: true,
	}
}

// Convert transforms a source document held in memory and returns the
// serialized target document.
func Convert(data []byte) ([]byte, error) {
	return ConvertWithOptions(data, DefaultOptions())
}

// ConvertWithOptions transforms a source document with explicit options.
func ConvertWithOptions(data []byte, opts Options) ([]byte, error) {
	parser := camtparser.NewParser(log)
	parser.SetStrictCurrency(opts.StrictCurrency)

	stmt, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	doc := transformer.NewTransformerWithCodes(log, opts.CodeMapper).Transform(stmt)

	indent := opts.Indent
	if indent == "" {
		indent = camtwriter.DefaultIndent
	}
	return camtwriter.WriteIndent(doc, indent)
}

// ConvertFile converts inputPath and writes the result to outputPath. An
// empty outputPath derives the path from the input file name. No output file
// is created when the conversion fails.
func ConvertFile(inputPath, outputPath string) error {
	return ConvertFileWithOptions(inputPath, outputPath, DefaultOptions())
}

// ConvertFileWithOptions converts a file with explicit options.
func ConvertFileWithOptions(inputPath, outputPath string, opts Options) error {
	suffix := opts.OutputSuffix
	if suffix == "" {
		suffix = "_08"
	}
	if outputPath == "" {
		outputPath = fileutils.DerivedOutputPath(inputPath, suffix)
	}

	data, err := fileutils.ReadFile(inputPath)
	if err != nil {
		return err
	}

	out, err := ConvertWithOptions(data, opts)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", inputPath, err)
	}

	if err := fileutils.WriteFile(outputPath, out); err != nil {
		return err
	}

	log.Info("converted statement file",
		logging.Field{Key: "input", Value: inputPath},
		logging.Field{Key: "output", Value: outputPath})
	return nil
}

// ValidateFile reports whether the file looks like a camt.053 statement.
func ValidateFile(path string) (bool, error) {
	return camtparser.NewParser(log).ValidateFormat(path)
}

// BatchConvert converts every .xml file in inputDir, writing the results to
// outputDir. Files are converted concurrently. A file that fails to convert
// is logged and skipped; the batch continues and the count reports the files
// that converted successfully.
func BatchConvert(inputDir, outputDir string) (int, error) {
	return BatchConvertWithOptions(inputDir, outputDir, DefaultOptions())
}

// BatchConvertWithOptions converts a directory with explicit options.
func BatchConvertWithOptions(inputDir, outputDir string, opts Options) (int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	suffix := opts.OutputSuffix
	if suffix == "" {
		suffix = "_08"
	}

	var inputs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".xml") {
			continue
		}
		// Skip files produced by an earlier run.
		if strings.HasSuffix(strings.TrimSuffix(strings.ToLower(name), ".xml"), strings.ToLower(suffix)) {
			continue
		}
		inputs = append(inputs, name)
	}
	if len(inputs) == 0 {
		return 0, nil
	}

	workerCount := runtime.NumCPU()
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}

	jobs := make(chan string, len(inputs))
	for _, name := range inputs {
		jobs <- name
	}
	close(jobs)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		count  int
		failed int
	)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				inputPath := filepath.Join(inputDir, name)
				outputPath := filepath.Join(outputDir, fileutils.DerivedOutputPath(name, suffix))
				err := ConvertFileWithOptions(inputPath, outputPath, opts)

				mu.Lock()
				if err != nil {
					failed++
					log.WithError(err).Error("skipping file that failed to convert",
						logging.Field{Key: "input", Value: inputPath})
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	log.Info("batch conversion finished",
		logging.Field{Key: "input_dir", Value: inputDir},
		logging.Field{Key: "converted", Value: count},
		logging.Field{Key: "failed", Value: failed},
		logging.Field{Key: "workers", Value: workerCount})
	return count, nil
}
