package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog-export",
	Short: "catalog-export downloads a term's course sections from the registration API and writes them to a flat file.",
	// errors are printed once by ExecuteContext
	SilenceErrors: true,
	SilenceUsage:  true,
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
