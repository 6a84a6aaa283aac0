package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scims/gpa_prize_tui/internal/prize"
	"github.com/scims/gpa_prize_tui/internal/report"
	"github.com/scims/gpa_prize_tui/internal/source"
)

var rootCmd = &cobra.Command{
	Use:   "gpa_prize_cli",
	Short: "Pick GPA prize recipients from a student roster.",
	Long: `Pick GPA prize recipients from a student roster. Students whose GPA ` +
		`strictly exceeds the threshold are eligible; the top recipients are ` +
		`listed by descending GPA, followed by all eligible students in ` +
		`alphabetical order. Without --file or --sample the roster source is ` +
		`chosen interactively, and any load failure falls back to the ` +
		`built-in sample.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().String("file", "", "load students from a roster file (csv, txt or html)")
	rootCmd.Flags().Bool("sample", false, "use the built-in sample without prompting")
	rootCmd.Flags().Int("max", prize.DefaultMaxRecipients, "maximum number of prize recipients")
	rootCmd.Flags().Float64("threshold", prize.DefaultThreshold, "GPA a student must strictly exceed to be eligible")
}

func run(cmd *cobra.Command, args []string) error {
	picker := prize.NewPicker()
	if v, ok := envInt("PRIZEQ_MAX_RECIPIENTS"); ok {
		picker.MaxRecipients = v
	}
	if v, ok := envFloat("PRIZEQ_GPA_THRESHOLD"); ok {
		picker.Threshold = v
	}
	if cmd.Flags().Changed("max") {
		picker.MaxRecipients, _ = cmd.Flags().GetInt("max")
	}
	if cmd.Flags().Changed("threshold") {
		picker.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}

	choice, src := resolveSource(cmd)

	res := source.Resolve(choice, src)
	if res.Notice != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Notice)
	}

	winners := picker.TopRecipients(res.Students)
	alphabetical := picker.Alphabetical(res.Students)
	eligible := picker.CountEligible(res.Students)

	fmt.Fprint(cmd.OutOrStdout(),
		report.Render(winners, alphabetical, eligible, picker.MaxRecipients, picker.Threshold))
	return nil
}

// resolveSource picks between the built-in sample and an external file,
// prompting interactively when no flag decided it already.
func resolveSource(cmd *cobra.Command) (source.Choice, source.Picker) {
	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		return source.ExternalFile, source.PathPicker(path)
	}
	if useSample, _ := cmd.Flags().GetBool("sample"); useSample {
		return source.BuiltinSample, nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== SCIMS $1000 Prize - GPA Priority Queue ===")
	fmt.Fprintln(out, "Load students from:")
	fmt.Fprintln(out, "  1) Built-in sample (hardcoded)")
	fmt.Fprintln(out, "  2) Load a CSV/TXT/HTML roster file")
	fmt.Fprint(out, "Choose [1/2]: ")

	in := bufio.NewReader(cmd.InOrStdin())
	choice, _ := in.ReadString('\n')
	if strings.TrimSpace(choice) != "2" {
		return source.BuiltinSample, nil
	}

	fmt.Fprint(out, "Roster file path (leave empty to cancel): ")
	path, _ = in.ReadString('\n')
	return source.ExternalFile, source.PathPicker(strings.TrimSpace(path))
}

func envInt(key string) (int, bool) {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
