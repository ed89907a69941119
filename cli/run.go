package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tenghoit/csc380-s26/metrics"
	"github.com/tenghoit/csc380-s26/policies"
	"github.com/tenghoit/csc380-s26/simulator"
	"github.com/tenghoit/csc380-s26/util"
)

func newRunCmd() *cobra.Command {
	var policyNames []string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run [data-file]",
		Short: "Compare dispatch policies over a job set",
		Long: "Reads job records (id submitted_at duration; flat text or CSV), runs each\n" +
			"selected policy over its own copy of the job set and prints one row per policy.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath := cfg.DataPath
			if len(args) == 1 {
				dataPath = args[0]
			}
			if dataPath == "" {
				return errors.New("no data file (pass it as an argument or set data_path in the config)")
			}

			metas, err := simulator.ReadJobMetas(dataPath)
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				return fmt.Errorf("%s: empty data source", dataPath)
			}
			logger.Info("job set loaded", "path", dataPath, "jobs", len(metas))
			if verbose {
				fmt.Fprintln(os.Stderr, util.Pretty(metas))
			}

			names := policyNames
			if !cmd.Flags().Changed("policies") && len(cfg.Policies) > 0 {
				names = cfg.Policies
			}
			var selected []simulator.DispatchPolicy
			if len(names) == 0 {
				selected = policies.Default()
			} else {
				selected, err = policies.ByNames(names)
				if err != nil {
					return err
				}
			}

			results, err := simulator.NewRunner(metas, selected).Run()
			if err != nil {
				return err
			}

			fmt.Printf("%-8s  %12s  %16s  %16s\n", "POLICY", "THROUGHPUT", "MEAN TURNAROUND", "CONTEXT SWITCHES")
			for _, m := range results {
				fmt.Printf("%-8s  %12.4f  %16.2f  %16d\n", m.Policy, m.Throughput, m.MeanTurnaround, m.ContextSwitches)
			}

			report := metrics.NewReport(metrics.CaseName(dataPath))
			report.AddScheduling(results)
			return finishReport(cmd.Context(), report)
		},
	}

	cmd.Flags().StringSliceVar(&policyNames, "policies", nil, "Policies to compare (fcfs, sjf, srtn, rr); default all")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Pretty-print the parsed job set")
	return cmd
}

// finishReport writes the JSON report and, when a database is configured,
// persists the run.
func finishReport(ctx context.Context, report *metrics.Report) error {
	path, err := metrics.Save(cfg.ReportDir, report)
	if err != nil {
		return err
	}
	logger.Info("report written", "path", path, "run_id", report.RunID)

	st, err := openStore()
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}
	if err := st.SaveReport(ctx, report); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	logger.Info("run persisted", "db", cfg.DBPath, "run_id", report.RunID)
	return nil
}
