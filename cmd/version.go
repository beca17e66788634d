package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"firestige.xyz/rcg/pkg/rcg"
)

// Version is set at build time with -ldflags "-X firestige.xyz/rcg/cmd.Version=...".
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and supported log generations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runVersion(cmd.OutOrStdout())
	},
}

func runVersion(out io.Writer) {
	fmt.Fprintf(out, "rcg %s\n", Version)
	fmt.Fprint(out, "log generations:")
	for _, v := range []rcg.LogVersion{rcg.V1, rcg.V2, rcg.V3, rcg.V4, rcg.V5} {
		fmt.Fprintf(out, " %s", v)
	}
	fmt.Fprintln(out)
}
