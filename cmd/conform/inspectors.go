package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conformlabs/conform/internal/registry"
)

var inspectorsCmd = &cobra.Command{
	Use:   "inspectors",
	Short: "List the built-in inspectors usable with --type and shape files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectorsCmd)
}
