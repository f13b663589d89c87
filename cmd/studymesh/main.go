// Command studymesh generates personalized study plans from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studymesh/studymesh"
	"github.com/studymesh/studymesh/config"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/orchestrator"
	"github.com/studymesh/studymesh/plan"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "studymesh",
		Short:         "Multi-agent study plan generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newPlanCmd())

	return cmd
}

type planFlags struct {
	goal       string
	subject    string
	difficulty string
	student    string
	deadline   string
	configPath string
	asJSON     bool
	verbose    bool
}

func newPlanCmd() *cobra.Command {
	flags := &planFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create a study plan for a goal",
		Example: `  studymesh plan --goal "prepare for my biology exam"
  studymesh plan --goal "learn Go" --difficulty beginner --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.goal, "goal", "", "study goal, e.g. \"prepare for my biology exam\" (required)")
	cmd.Flags().StringVar(&flags.subject, "subject", "", "subject override; derived from the goal when empty")
	cmd.Flags().StringVar(&flags.difficulty, "difficulty", "", "known difficulty: beginner, intermediate or advanced")
	cmd.Flags().StringVar(&flags.student, "student", "", "student identifier")
	cmd.Flags().StringVar(&flags.deadline, "deadline", "", "deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "emit the plan as JSON")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func runPlan(cmd *cobra.Command, flags *planFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	req := core.Request{
		Goal:      flags.goal,
		Subject:   flags.subject,
		StudentID: flags.student,
	}

	if flags.difficulty != "" {
		d, err := parseDifficulty(flags.difficulty)
		if err != nil {
			return err
		}
		req.KnownDifficulty = d
	}

	if flags.deadline != "" {
		t, err := time.Parse("2006-01-02", flags.deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q: expected YYYY-MM-DD", flags.deadline)
		}
		req.Deadline = &t
	}

	mesh := studymesh.New(func(o *studymesh.Options) {
		o.Config = cfg
		o.Logger = newLogger(cfg.Logging, flags.verbose)
	})

	result, err := mesh.CreateStudyPlan(cmd.Context(), req)
	if err != nil {
		return err
	}

	if flags.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result.Plan)
	}

	renderPlan(cmd, req, result)
	return nil
}

func parseDifficulty(s string) (core.Difficulty, error) {
	switch strings.ToLower(s) {
	case "beginner":
		return core.DifficultyBeginner, nil
	case "intermediate":
		return core.DifficultyIntermediate, nil
	case "advanced":
		return core.DifficultyAdvanced, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q: expected beginner, intermediate or advanced", s)
	}
}

func newLogger(cfg config.LoggingConfig, verbose bool) logging.Logger {
	level := logging.ParseLevel(cfg.Level)
	if verbose {
		level = logging.LogLevelDebug
	}

	lc := logging.DefaultLoggerConfig()
	lc.Level = level
	lc.Format = cfg.Format
	lc.Output = os.Stderr
	lc.Component = "cli"
	return logging.NewLogger(lc)
}

func renderPlan(cmd *cobra.Command, req core.Request, result *orchestrator.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Study plan for %s (%s)\n", req.Topic(), result.Status)
	fmt.Fprintln(out, strings.Repeat("=", 40))

	for _, day := range result.Plan.Days {
		fmt.Fprintf(out, "\nDay %d\n", day.Day)
		for _, task := range day.Tasks {
			fmt.Fprintf(out, "  - %s (%d min)%s\n", task.Title, task.DurationMinutes, taskSuffix(task))
		}
	}

	if result.Plan.WellnessNote != "" {
		fmt.Fprintf(out, "\nWellness: %s\n", result.Plan.WellnessNote)
	}
	if result.Plan.MotivationMessage != "" {
		fmt.Fprintf(out, "\n%s\n", result.Plan.MotivationMessage)
	}

	if len(result.Skipped) > 0 || len(result.Failed) > 0 {
		fmt.Fprintf(out, "\nskipped: %v  failed: %v\n", result.Skipped, result.Failed)
	}
}

func taskSuffix(task plan.Task) string {
	switch {
	case task.IsBreak:
		return " [break]"
	case task.Source != "":
		return " via " + task.Source
	default:
		return ""
	}
}
