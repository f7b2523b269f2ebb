package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	insightsCmd := &cobra.Command{Use: "insights", Short: "Idea analysis operations"}

	var goal string
	ideaCmd := func(use, short, path string, withGoal bool) *cobra.Command {
		c := &cobra.Command{
			Use:   use + " IDEA",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				payload := map[string]interface{}{"idea": args[0]}
				if withGoal {
					payload["goal"] = goal
				}
				data, err := doPostJSON(path, payload)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(os.Stdout, string(data))
				return nil
			},
		}
		if withGoal {
			c.Flags().StringVarP(&goal, "goal", "g", "growth", "Optimization goal")
		}
		return c
	}

	insightsCmd.AddCommand(ideaCmd("evolve", "Generate three goal-optimized variants", "/api/evolve", true))
	insightsCmd.AddCommand(ideaCmd("analyze", "Score an idea (clarity, market fit, competition)", "/api/analyze", false))
	insightsCmd.AddCommand(ideaCmd("business", "Business model, monetization, go-to-market", "/api/business-insights", true))
	insightsCmd.AddCommand(ideaCmd("roast", "Get a brutal critique", "/api/roast", false))
	insightsCmd.AddCommand(ideaCmd("research", "Research classification and paper suggestions", "/api/research", false))
	insightsCmd.AddCommand(ideaCmd("debate", "Optimist/skeptic exchange", "/api/ai-debate", false))

	mixCmd := &cobra.Command{
		Use:   "mix IDEA1 IDEA2",
		Short: "Combine two ideas into one concept",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON("/api/idea-mixer", map[string]interface{}{"idea1": args[0], "idea2": args[1]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	insightsCmd.AddCommand(mixCmd)

	rootCmd.AddCommand(insightsCmd)
}
