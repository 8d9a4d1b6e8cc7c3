// Package root contains the root command for the application
package root

import (
	"fjacquet/camt-convert/internal/config"
	"fjacquet/camt-convert/internal/logging"
	"fjacquet/camt-convert/internal/transformer"
	"fjacquet/camt-convert/pkg/converter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Opts carries the conversion options resolved from configuration
	Opts = converter.DefaultOptions()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "camt-convert",
		Short: "A CLI tool to convert camt.053.001.10 statements to camt.053.001.08.",
		Long: `camt-convert rewrites ISO 20022 bank statement files from schema version
camt.053.001.10 down to camt.053.001.08 so that they can be imported into
software that only understands the older version.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to camt-convert!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log = config.ConfigureLogging()
				Log.Warnf("Falling back to defaults, configuration invalid: %v", err)
			} else {
				Log = config.ConfigureLoggingFromConfig(cfg)
				Opts, err = OptionsFromConfig(cfg)
				if err != nil {
					Log.Fatalf("Error applying configuration: %v", err)
				}
			}
			converter.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string

	// Specific convert command flags
	CodeRules string
)

// OptionsFromConfig builds conversion options from the loaded configuration,
// reading the bank transaction code rule file when one is configured.
func OptionsFromConfig(cfg *config.Config) (converter.Options, error) {
	opts := converter.DefaultOptions()
	opts.OutputSuffix = cfg.Output.Suffix
	opts.Indent = cfg.Output.Indent
	opts.StrictCurrency = cfg.Convert.StrictValidation

	if cfg.Convert.BankTxCodeRules != "" {
		mapper, err := transformer.LoadCodeMapper(cfg.Convert.BankTxCodeRules)
		if err != nil {
			return opts, err
		}
		opts.CodeMapper = mapper
	}
	return opts, nil
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
