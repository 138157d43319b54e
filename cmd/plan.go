package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/config"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/llm"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/logger"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/pkg/export"
	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/planner"
)

var planFormat string

var planCmd = &cobra.Command{
	Use:   "plan TASK...",
	Short: "Plan the given tasks once and print the schedule",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.SetDebug(cfg.Server.Debug)
		if planFormat != export.FormatJSON && planFormat != export.FormatCSV {
			return fmt.Errorf("unknown format %q", planFormat)
		}
		p := planner.New(llm.NewOpenAIClient(cfg.OpenAI), logger.New("planner"))
		return runPlan(cmd, p, args)
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", export.FormatJSON, "output format: json or csv")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, p *planner.Planner, tasks []string) error {
	result, err := p.Plan(cmd.Context(), tasks)
	if err != nil {
		var parseErr *planner.ResponseParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("%s: %w", planner.ParseFailureDetail, err)
		}
		return err
	}
	return export.Write(cmd.OutOrStdout(), planFormat, result)
}
