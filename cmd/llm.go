package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thanvish21/systemx/internal/llm"
	"github.com/thanvish21/systemx/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect mentor service requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent mentor requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.RequestLog().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query request log: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No mentor requests logged.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-24s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Provider", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 96))

		for _, r := range records {
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 24 {
				model = model[:24]
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-24s  %-6d  %-6d  %-7d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Provider,
				model,
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show which provider the environment resolves to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No provider configured. Set SYSX_LLM_PROVIDER or export an API key.")
				return nil
			}
			cfg = discovered
		}
		fmt.Printf("provider: %s\n", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Printf("model:    %s\n", cfg.Gemini.Model)
		case "anthropic":
			fmt.Printf("model:    %s\n", cfg.Anthropic.Model)
		case "openai":
			fmt.Printf("model:    %s\n", cfg.OpenAI.Model)
		}
		fmt.Printf("timeout:  %s\n", cfg.Timeout)
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of requests to show")
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmProbeCmd)
}
