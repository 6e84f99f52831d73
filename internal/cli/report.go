package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a workload analysis without launching the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		snap := app.store.Current()
		report, err := app.analyzer.AnalyzeWorkload(cmd.Context(), snap.Employees, snap.Tasks)
		if err != nil {
			// The fallback report still prints; note the degradation.
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: analysis degraded to fallback:", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, report.Summary)
		fmt.Fprintf(out, "efficiency: %d/100\n", report.EfficiencyScore)
		for _, name := range report.BurnoutRisk {
			fmt.Fprintln(out, "burnout risk:", name)
		}
		for _, rec := range report.Recommendations {
			fmt.Fprintln(out, "-", rec)
		}

		fmt.Fprintln(out)
		for _, emp := range snap.Employees {
			fmt.Fprintf(out, "%-20s %-12s %5.1f %s\n", emp.Name, emp.Role, emp.WorkloadScore, emp.Status)
		}
		return nil
	},
}
