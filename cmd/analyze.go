package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/formcheck/internal/pose"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <poses.json>",
	Short: "Assess a pose sequence from a JSON file without running the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		req, err := pose.ValidateRequest(raw)
		if err != nil {
			return fmt.Errorf("validate request: %w", err)
		}

		svc, _ := buildService(cmd, cfg)

		resp, err := svc.Analyze(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		sep := strings.Repeat("─", 60)

		fmt.Println(sep)
		fmt.Printf("Overall:       %3d\n", resp.Overall)
		fmt.Printf("Accuracy:      %3d\n", resp.Accuracy)
		fmt.Printf("Coordination:  %3d\n", resp.Coordination)
		fmt.Printf("Stability:     %3d\n", resp.Stability)
		fmt.Println(sep)

		for _, f := range resp.Feedback {
			fmt.Printf("%s [%s] %s\n", f.Icon, f.Type, f.Text)
		}

		if len(resp.Suggestions) > 0 {
			fmt.Println()
			fmt.Println("Suggestions:")
			for _, s := range resp.Suggestions {
				fmt.Printf("- %s\n", s)
			}
		}

		return nil
	},
}
