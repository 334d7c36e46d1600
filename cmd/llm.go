package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM traffic",
}

// withStore opens the configured database, runs fn, and closes it.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, s *store.Store) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(context.Background(), s)
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Println("No LLM events recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
			for _, e := range events {
				if purpose != "" && e.Purpose != purpose {
					continue
				}
				status := "yes"
				if !e.Success {
					status = "NO"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					e.ID,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Purpose,
					e.Model,
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					status,
				)
			}
			return w.Flush()
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one event with its full request and response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event ID %q", args[0])
		}

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			e, err := s.EventRepo().GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
			fmt.Fprintf(w, "ID:\t%d\n", e.ID)
			fmt.Fprintf(w, "Time:\t%s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "Provider:\t%s\n", e.Provider)
			fmt.Fprintf(w, "Model:\t%s\n", e.Model)
			fmt.Fprintf(w, "Purpose:\t%s\n", e.Purpose)
			fmt.Fprintf(w, "Tokens:\t%d in / %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Fprintf(w, "Latency:\t%dms\n", e.LatencyMs)
			fmt.Fprintf(w, "Success:\t%v\n", e.Success)
			if e.ErrorMessage != "" {
				fmt.Fprintf(w, "Error:\t%s\n", e.ErrorMessage)
			}
			w.Flush()

			printBody("REQUEST", e.RequestBody)
			printBody("RESPONSE", e.ResponseBody)
			return nil
		})
	},
}

func printBody(label, body string) {
	fmt.Printf("\n--- %s ---\n", label)
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Println("No LLM usage recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tTOTAL\tAVG MS\t")
			var calls, in, out int
			for _, u := range byPurpose {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t\n",
					u.Purpose, u.Calls, u.InputTokens, u.OutputTokens,
					u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
				calls += u.Calls
				in += u.InputTokens
				out += u.OutputTokens
			}
			fmt.Fprintf(w, "total\t%d\t%d\t%d\t%d\t\t\n", calls, in, out, in+out)
			w.Flush()

			byModel, err := s.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(byModel) == 0 {
				return nil
			}

			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "MODEL\tCALLS\tINPUT\tOUTPUT\tEST COST\t")
			var totalCost float64
			var unpriced []string
			for _, u := range byModel {
				pricing := llm.LookupCost(u.Model)
				if pricing == nil {
					unpriced = append(unpriced, u.Model)
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\t\n", u.Model, u.Calls, u.InputTokens, u.OutputTokens)
					continue
				}
				c := pricing.Cost(u.InputTokens, u.OutputTokens)
				totalCost += c
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t\n", u.Model, u.Calls, u.InputTokens, u.OutputTokens, formatUSD(c))
			}
			label := "total"
			if len(unpriced) > 0 {
				label = "total (partial)"
			}
			fmt.Fprintf(w, "%s\t\t\t\t%s\t\n", label, formatUSD(totalCost))
			w.Flush()

			if len(unpriced) > 0 {
				fmt.Printf("\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
			}
			return nil
		})
	},
}

func formatUSD(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. roadmap-gen, quiz-gen)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
