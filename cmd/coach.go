package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"
)

const coachSystemPrompt = `You are a golf coach. You are given structured statistics computed from a
golfer's recorded shots and a question from the golfer.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable: name one or two things to practise.
- Avoid generic swing tips unless they directly explain a pattern in the data.

Data glossary:
- Distances are metres. Rates are fractions in [0, 1]; null means no samples.
- pure_strike_rate: share of strike-tagged shots struck Pure.
- straight_rate: share of direction-tagged shots finishing Straight at target.
- on_pin_rate: share of length-tagged shots finishing OnPin.
- trend: last 5 rounds ("recent") vs the 5 before ("prior"); needs 10 rounds.
- weaknesses: rule-based faults; severity 0..1, higher is worse.
- analysis: the filtered subset (see "filters"), with one distribution per
  attribute. An attribute used as a filter has no distribution.`

var (
	coachModel  string
	coachAPIKey string
	coachFilter *filterFlags
)

var coachCmd = &cobra.Command{
	Use:   "coach <question>",
	Short: "Ask an AI coach about your stats (requires an Anthropic API key)",
	Long: `Send the dashboard, plus the analysis for any filter flags, to Anthropic and
stream back an answer grounded in those numbers.

The API key comes from --api-key, else the environment variable named by
coach.api_key_env in the config (default ANTHROPIC_API_KEY). A .env file next
to the config file is loaded first.

Example:
  golfstats coach --club Driver "Why do I keep missing right?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCoach,
}

func init() {
	coachCmd.Flags().StringVar(&coachModel, "model", "", "Anthropic model to use (default from config)")
	coachCmd.Flags().StringVar(&coachAPIKey, "api-key", "", "Anthropic API key (falls back to the configured env var)")
	coachFilter = addFilterFlags(coachCmd)
}

func runCoach(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	c, err := coachFilter.criteria()
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	shots, rounds, err := loadAll(db)
	if err != nil {
		return err
	}
	if len(shots) == 0 {
		return fmt.Errorf("no shots stored yet: run 'golfstats import <export.json>' first")
	}

	data, err := json.Marshal(buildExport(shots, rounds, c, coachFilter.active()))
	if err != nil {
		return fmt.Errorf("encode context: %w", err)
	}

	modelID := cfg.Coach.Model
	if coachModel != "" {
		modelID = coachModel
	}
	apiKey := coachAPIKey
	if apiKey == "" {
		apiKey = cfg.Coach.APIKey()
	}
	lg.Debug("asking coach", "model", modelID, "context_bytes", len(data))
	return callAnthropic(cmd.Context(), apiKey, modelID, cfg.Coach.MaxTokens, string(data), question)
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID string, maxTokens int64, dataJSON, question string) error {
	if apiKey == "" {
		return fmt.Errorf("no API key: set %s or use --api-key", cfg.Coach.APIKeyEnv)
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── Coach ───────────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: coachSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed: check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
