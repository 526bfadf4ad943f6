package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mecheng-tools/goshaft/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goshaft",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goshaft v%s\n", version.Version)
		fmt.Println("Stepped Shaft Design & Fatigue Sizing Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
