package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oleg578/csvexport"
	"github.com/oleg578/csvexport/download"
)

type runConfig struct {
	input      string
	output     string
	configFile string
	verbose    bool

	opts csvexport.Options
}

func newRootCmd() *cobra.Command {
	cfg := &runConfig{}

	cmd := &cobra.Command{
		Use:   "csvexport",
		Short: "Convert a JSON array of records into an encoded CSV file",
		Long: `csvexport reads a JSON array of objects or arrays and writes it as CSV.

Rows are separated by CRLF. The output can be encoded as utf-8, utf-16,
utf-16le or utf-16be, optionally with a byte-order mark.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.input, "input", "i", "-", "JSON input file, - for stdin")
	flags.StringVarP(&cfg.output, "output", "o", csvexport.DefaultFilename, "CSV output file, - for stdout")
	flags.StringVarP(&cfg.configFile, "config", "c", "", "YAML options file")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "verbose output")

	flags.StringSliceVar(&cfg.opts.Header, "header", nil, "header row titles")
	flags.BoolVar(&cfg.opts.Label, "label", false, "emit the first record's keys as a label row")
	flags.StringSliceVar(&cfg.opts.ColumnOrder, "column-order", nil, "keys selecting and ordering columns")
	flags.StringVar(&cfg.opts.FieldSep, "field-sep", ",", `field separator, escaped controls such as \t are accepted`)
	flags.StringVar(&cfg.opts.TxtDelim, "text-delimiter", `"`, "text delimiter")
	flags.StringVar(&cfg.opts.DecimalSep, "decimal-sep", ".", `decimal separator, or "locale"`)
	flags.StringVar(&cfg.opts.Locale, "locale", csvexport.DefaultLocale, `locale used with --decimal-sep=locale`)
	flags.BoolVar(&cfg.opts.QuoteStrings, "quote-strings", false, "quote every text field")
	flags.StringVar(&cfg.opts.Charset, "charset", "utf-8", "utf-8, utf-16, utf-16le or utf-16be")
	flags.BoolVar(&cfg.opts.AddByteOrderMarker, "add-bom", false, "prefix output with the charset's byte-order mark")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg *runConfig) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"charset": opts.Charset,
		"bom":     opts.AddByteOrderMarker,
	}).Debug("options resolved")

	src := csvexport.Producer(func() ([]csvexport.Record, error) {
		data, err := readInput(cmd, cfg.input)
		if err != nil {
			return nil, err
		}
		records, err := csvexport.RecordsFromJSON(data)
		if err != nil {
			return nil, err
		}
		log.WithField("records", len(records)).Debug("input decoded")
		return records, nil
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	payload, err := csvexport.Stringify(ctx, src, opts)
	if err != nil {
		return err
	}

	if cfg.output == "-" {
		_, err = payload.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := download.Save(cfg.output, payload); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"filename": cfg.output,
		"charset":  payload.Charset,
		"bytes":    len(payload.Data),
	}).Info("CSV written")
	return nil
}

// resolveOptions layers explicitly set flags over the config file.
func resolveOptions(cmd *cobra.Command, cfg *runConfig) (csvexport.Options, error) {
	opts := cfg.opts
	if cfg.configFile != "" {
		fileOpts, err := csvexport.LoadOptions(cfg.configFile)
		if err != nil {
			return csvexport.Options{}, err
		}
		flags := cmd.Flags()
		overlay := []struct {
			name  string
			apply func()
		}{
			{"header", func() { fileOpts.Header = opts.Header }},
			{"label", func() { fileOpts.Label = opts.Label }},
			{"column-order", func() { fileOpts.ColumnOrder = opts.ColumnOrder }},
			{"field-sep", func() { fileOpts.FieldSep = opts.FieldSep }},
			{"text-delimiter", func() { fileOpts.TxtDelim = opts.TxtDelim }},
			{"decimal-sep", func() { fileOpts.DecimalSep = opts.DecimalSep }},
			{"locale", func() { fileOpts.Locale = opts.Locale }},
			{"quote-strings", func() { fileOpts.QuoteStrings = opts.QuoteStrings }},
			{"charset", func() { fileOpts.Charset = opts.Charset }},
			{"add-bom", func() { fileOpts.AddByteOrderMarker = opts.AddByteOrderMarker }},
		}
		for _, o := range overlay {
			if flags.Changed(o.name) {
				o.apply()
			}
		}
		opts = fileOpts
	}
	opts.FieldSep = csvexport.NormalizeFieldSep(opts.FieldSep)
	return opts, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %q: %w", path, err)
	}
	return data, nil
}
