// Command beacon-bench times the primitives in this module: the two
// single-party VRFs, the GLOW DVRF's partial-eval/aggregate path, the
// FlexiRand blind/unblind round trip, and the Instarand client glue.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	iterations int
	threshold  int
	parties    int
)

var rootCmd = &cobra.Command{
	Use:   "beacon-bench",
	Short: "Benchmark harness for the VRF / DVRF / FlexiRand / Instarand primitives",
}

var vrfCmd = &cobra.Command{
	Use:   "vrf",
	Short: "Benchmark the Goldberg VRF (eval + verify)",
	RunE:  runVRFBench,
}

var blsVRFCmd = &cobra.Command{
	Use:   "bls-vrf",
	Short: "Benchmark the hashless BLS-VRF (eval + verify)",
	RunE:  runBLSVRFBench,
}

var dvrfCmd = &cobra.Command{
	Use:   "dvrf",
	Short: "Benchmark GLOW DVRF keygen, concurrent partial evaluation, and aggregation",
	RunE:  runDVRFBench,
}

var flexirandCmd = &cobra.Command{
	Use:   "flexirand",
	Short: "Benchmark a FlexiRand blind / partial-eval / aggregate / unblind round trip",
	RunE:  runFlexiRandBench,
}

var instarandCmd = &cobra.Command{
	Use:   "instarand",
	Short: "Benchmark the Instarand client-server beacon composition",
	RunE:  runInstarandBench,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&iterations, "iterations", "n", 100, "number of benchmark iterations")
	dvrfCmd.Flags().IntVarP(&threshold, "threshold", "t", 5, "DVRF threshold")
	dvrfCmd.Flags().IntVarP(&parties, "parties", "N", 9, "DVRF party count")
	flexirandCmd.Flags().IntVarP(&threshold, "threshold", "t", 5, "DVRF threshold")
	flexirandCmd.Flags().IntVarP(&parties, "parties", "N", 9, "DVRF party count")

	rootCmd.AddCommand(vrfCmd, blsVRFCmd, dvrfCmd, flexirandCmd, instarandCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "beacon-bench: %v\n", err)
		os.Exit(1)
	}
}
