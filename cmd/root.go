package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "radarctl",
	Short: "Narrative radar - detect and rank emerging blockchain narratives",
	Long: `radarctl runs the narrative detection pipeline over a batch of signal
events: on-chain activity, source-code hosting activity, micro-blogging, and
long-form blog posts.

It normalizes events, clusters them by entity co-occurrence and text
similarity, scores each cluster by acceleration, breadth, cross-domain
corroboration, novelty, and source credibility, and prints a ranked,
explained list of narratives with supporting evidence.`,
}

// Execute runs the root command.
func Execute() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")
}
