package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chainpulse/narrative-radar/internal/orchestrator"
)

var explainCmd = &cobra.Command{
	Use:   "explain [artifact.json] [narrative-label]",
	Short: "Print full evidence and score breakdown for one narrative from a prior run",
	Long: `explain reads a run artifact previously written by "detect --json" and
prints the complete evidence trail, feature/score breakdown, and why-now
text for a single narrative, matched by its label.

Examples:
  radarctl detect events.json --json > run.json
  radarctl explain run.json "Firedancer"`,
	Args: cobra.ExactArgs(2),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	art, err := loadArtifact(args[0])
	if err != nil {
		return err
	}

	label := args[1]
	var found *orchestrator.RankedNarrativeJSON
	for i := range art.Narratives {
		if art.Narratives[i].Label == label {
			found = &art.Narratives[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("explain: no narrative labeled %q in %s", label, args[0])
	}

	printExplanation(*found)
	return nil
}

func loadArtifact(path string) (*orchestrator.RunArtifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("explain: open artifact: %w", err)
	}
	defer f.Close()

	var art orchestrator.RunArtifact
	if err := json.NewDecoder(f).Decode(&art); err != nil {
		return nil, fmt.Errorf("explain: decode artifact: %w", err)
	}
	return &art, nil
}

func printExplanation(n orchestrator.RankedNarrativeJSON) {
	headerColor := lipgloss.Color("#F780FF")
	labelColor := lipgloss.Color("#BD93F9")
	numberColor := lipgloss.Color("#FF79C6")
	tierColor := lipgloss.Color("#8BE9FD")
	bodyColor := lipgloss.Color("#E9E9F4")

	headerStyle := lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(labelColor).Bold(true)
	numberStyle := lipgloss.NewStyle().Foreground(numberColor)
	tierStyle := lipgloss.NewStyle().Foreground(tierColor)
	bodyStyle := lipgloss.NewStyle().Foreground(bodyColor)

	fmt.Println(labelStyle.Render(n.Label))
	fmt.Println(numberStyle.Render(fmt.Sprintf("score %.3f  confidence %s (%.1f)", float64(n.Score), n.Confidence.Tier, float64(n.Confidence.Value))))
	fmt.Println(tierStyle.Render("entities: " + strings.Join(n.Entities, ", ")))
	fmt.Println()

	fmt.Println(headerStyle.Render("FEATURES"))
	fmt.Printf("  velocity %.3f  breadth %.3f  cross %.3f  novelty %.3f  credibility %.3f\n",
		float64(n.Features.Velocity), float64(n.Features.Breadth), float64(n.Features.Cross),
		float64(n.Features.Novelty), float64(n.Features.Credibility))

	fmt.Println(headerStyle.Render("SCORE BREAKDOWN"))
	fmt.Printf("  velocity %.3f  breadth %.3f  cross %.3f  novelty %.3f  credibility %.3f  spam %.3f  single_source %.3f\n",
		float64(n.ScoreBreakdown.Velocity), float64(n.ScoreBreakdown.Breadth), float64(n.ScoreBreakdown.Cross),
		float64(n.ScoreBreakdown.Novelty), float64(n.ScoreBreakdown.Credibility),
		float64(n.ScoreBreakdown.Spam), float64(n.ScoreBreakdown.SingleSource))

	fmt.Println(headerStyle.Render("WHY NOW"))
	fmt.Println(bodyStyle.Render(n.WhyNow))

	fmt.Println(headerStyle.Render(fmt.Sprintf("EVIDENCE (%d)", len(n.Evidence))))
	for _, e := range n.Evidence {
		fmt.Println("  - " + e)
	}
}
