package commands

import (
	"fmt"

	"github.com/homemade/coursecat/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var columnsAsCSV bool

func init() {
	columnsCmd.Flags().BoolVar(&columnsAsCSV, "csv", false, "Print as CSV instead of a table.")
	rootCmd.AddCommand(columnsCmd)
}

var columnsCmd = &cobra.Command{
	Use:   "columns [--csv]",
	Short: "Lists the exported columns and the course fields they are read from.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := catalog.DescribeColumns()
		if columnsAsCSV {
			s, err := doc.FormatCSV()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(cmd.OutOrStdout())
		header := table.Row{}
		for _, h := range catalog.DocHeaders {
			header = append(header, h)
		}
		t.AppendHeader(header)
		for _, row := range doc.Rows {
			t.AppendRow(table.Row{row.Position, row.Header, row.SourceKey, row.ValueType})
		}
		t.Render()
		return nil
	},
}
