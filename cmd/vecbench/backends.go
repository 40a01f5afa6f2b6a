package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vecbench/kernel"
)

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List kernel implementations and detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "CPU features: %s\n\n", kernel.HostFeatures())

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Name\tRequires\tLanes\tImpl\tPriority\tSupported\tSelected")
			fmt.Fprintln(tw, "----\t--------\t-----\t----\t--------\t---------\t--------")
			for _, b := range kernel.Backends() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
					b.Name, b.SIMD, b.Lanes, b.Impl, b.Priority, yesNo(b.Supported), mark(b.Selected))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			_, err := fmt.Fprintln(out, "\nLanes is the unroll width. \"unrolled Go\" kernels are plain Go loops\n"+
				"sized for the required SIMD level; no hand-written assembly is used.")
			return err
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func mark(v bool) string {
	if v {
		return "*"
	}
	return ""
}
