package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chainpulse/narrative-radar/internal/config"
	"github.com/chainpulse/narrative-radar/internal/logging"
	"github.com/chainpulse/narrative-radar/internal/orchestrator"
	"github.com/chainpulse/narrative-radar/internal/signal"
)

var (
	windowHours  int
	baselineDays int
	aliasFile    string
	jsonOutput   bool
)

var detectCmd = &cobra.Command{
	Use:   "detect [events.json]",
	Short: "Detect and rank emerging narratives from a batch of signal events",
	Long: `detect reads a JSON array of signal events, runs the full pipeline
(normalize, cluster, score, explain) against a window ending now, and prints
the ranked narratives.

Examples:
  radarctl detect events.json
  radarctl detect events.json --window-hours 48 --json
  radarctl detect events.json --aliases aliases.json`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().IntVar(&windowHours, "window-hours", 24, "analysis window length in hours, ending now")
	detectCmd.Flags().IntVar(&baselineDays, "baseline-days", 7, "baseline window length in days, ending at the start of the analysis window")
	detectCmd.Flags().StringVar(&aliasFile, "aliases", "", "path to a JSON alias table ([{canonical, forms}])")
	detectCmd.Flags().BoolVar(&jsonOutput, "json", false, "output the raw run artifact as JSON")
}

func runDetect(cmd *cobra.Command, args []string) error {
	log := logging.New(verbose)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	aliases, err := loadAliases(aliasFile)
	if err != nil {
		return err
	}
	cfg.Aliases = aliases

	events, err := loadEvents(args[0])
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	runCtx := signal.RunContext{
		RunID:         fmt.Sprintf("run-%d", now.Unix()),
		GeneratedAt:   now,
		WindowStart:   now.Add(-time.Duration(windowHours) * time.Hour),
		WindowEnd:     now,
		BaselineStart: now.Add(-time.Duration(windowHours)*time.Hour - time.Duration(baselineDays)*24*time.Hour),
		BaselineEnd:   now.Add(-time.Duration(windowHours) * time.Hour),
	}

	art, err := orchestrator.Run(ctx, events, runCtx, signal.NewAliasTable(cfg.Aliases), cfg, log)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}

	if jsonOutput {
		return printJSON(art)
	}
	return printTable(art)
}

func printJSON(art *orchestrator.RunArtifact) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(art)
}

func printTable(art *orchestrator.RunArtifact) error {
	var (
		headerColor  = lipgloss.Color("#F780FF")
		labelColor   = lipgloss.Color("#BD93F9")
		numberColor  = lipgloss.Color("#FF79C6")
		tierColor    = lipgloss.Color("#8BE9FD")
		borderColor  = lipgloss.Color("#6272A4")
		summaryColor = lipgloss.Color("#8BE9FD")
	)

	const (
		labelWidth = 32
		scoreWidth = 8
		tierWidth  = 10
		membWidth  = 9
	)

	headerStyle := lipgloss.NewStyle().Foreground(headerColor).Bold(true).Padding(0, 1)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	if len(art.Narratives) == 0 {
		fmt.Println("No narratives detected in this window.")
		if art.Notes != "" {
			fmt.Println(art.Notes)
		}
		return nil
	}

	headers := []string{
		headerStyle.Width(labelWidth).Render("NARRATIVE"),
		headerStyle.Width(scoreWidth).Render("SCORE"),
		headerStyle.Width(tierWidth).Render("CONFIDENCE"),
		headerStyle.Width(membWidth).Render("MEMBERS"),
	}
	fmt.Println(strings.Join(headers, borderStyle.Render("│")))

	sep := []string{
		strings.Repeat("─", labelWidth),
		strings.Repeat("─", scoreWidth),
		strings.Repeat("─", tierWidth),
		strings.Repeat("─", membWidth),
	}
	fmt.Println(borderStyle.Render(strings.Join(sep, "┼")))

	labelStyle := lipgloss.NewStyle().Foreground(labelColor).Padding(0, 1).Width(labelWidth)
	scoreStyle := lipgloss.NewStyle().Foreground(numberColor).Padding(0, 1).Width(scoreWidth).Align(lipgloss.Right)
	tierStyle := lipgloss.NewStyle().Foreground(tierColor).Padding(0, 1).Width(tierWidth)
	membStyle := lipgloss.NewStyle().Foreground(numberColor).Padding(0, 1).Width(membWidth).Align(lipgloss.Right)

	for _, n := range art.Narratives {
		row := []string{
			labelStyle.Render(n.Label),
			scoreStyle.Render(fmt.Sprintf("%.3f", float64(n.Score))),
			tierStyle.Render(n.Confidence.Tier),
			membStyle.Render(fmt.Sprintf("%d", len(n.Members))),
		}
		fmt.Println(strings.Join(row, borderStyle.Render("│")))
	}

	fmt.Println()
	summaryStyle := lipgloss.NewStyle().Foreground(summaryColor).Italic(true)
	fmt.Println(summaryStyle.Render(fmt.Sprintf(
		"%d events ingested, %d after dedup, %d candidates, %d ranked",
		art.Totals.Ingested, art.Totals.AfterDedup, art.Totals.Candidates, art.Totals.Ranked)))

	for _, n := range art.Narratives[:1] {
		fmt.Println()
		fmt.Println(lipgloss.NewStyle().Bold(true).Render("Top narrative: " + n.Label))
		fmt.Println(n.WhyNow)
	}

	return nil
}
