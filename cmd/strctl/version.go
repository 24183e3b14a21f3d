package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the strctl version",
		Run: func(cmd *cobra.Command, args []string) {
			printInfo("strctl %s\n", version)
		},
	})
}
