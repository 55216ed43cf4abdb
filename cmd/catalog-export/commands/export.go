package commands

import (
	"fmt"

	"github.com/homemade/coursecat/catalog"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	config string
	out    string
	term   string
	format string
	record bool
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.config, "config", "", "YAML file layered over the built-in defaults.")
	f.StringVar(&exportFlags.out, "out", "", "Output file, overrides output.path.")
	f.StringVar(&exportFlags.term, "term", "", "Term code, overrides search.term.")
	f.StringVar(&exportFlags.format, "format", "", "Output format: csv, tsv or jsonl. Without --out, a .csv/.tsv/.jsonl output.path takes the format's extension.")
	f.BoolVar(&exportFlags.record, "record", false, "Record the HTTP exchange under testdata/.requests.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [--config <file>] [--out <file>] [--term <code>] [--format csv|tsv|jsonl]",
	Short: "Fetches the first page of course sections and writes them to the output file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := exportConfig()
		if err != nil {
			return err
		}

		summary, err := catalog.Run(cmd.Context(), catalog.RunContext{
			Config:         cfg,
			RecordRequests: exportFlags.record,
		})
		if err != nil {
			return err
		}

		total := "unknown"
		if n, ok := summary.TotalCount.Get(); ok {
			total = fmt.Sprint(n)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d sections (total reported: %s) to %s\n", summary.Rows, total, summary.Path)
		return nil
	},
}

// exportConfig loads the config and applies the export flags over it.
func exportConfig() (catalog.Config, error) {
	cfg, err := catalog.LoadConfigFromEnvironment(exportFlags.config)
	if err != nil {
		return cfg, err
	}
	if exportFlags.term != "" {
		cfg.Search.Term = exportFlags.term
	}
	if exportFlags.format != "" {
		cfg.Output.Format = exportFlags.format
		cfg.Output.Path = catalog.PathForFormat(cfg.Output.Path, exportFlags.format)
	}
	if exportFlags.out != "" {
		cfg.Output.Path = exportFlags.out
	}
	return cfg, cfg.Validate()
}
