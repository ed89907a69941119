package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenghoit/csc380-s26/metrics"
	"github.com/tenghoit/csc380-s26/pagereplace"
)

func newPagerepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pagerep [data-file]",
		Short: "Compare page replacement algorithms over a reference string",
		Long: "Reads a page-replacement case (first line frame count, then one page per\n" +
			"line) and prints the fault count of Optimal, FIFO, LRU and Second Chance.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath := cfg.PageReplacement.DataPath
			if len(args) == 1 {
				dataPath = args[0]
			}
			if dataPath == "" {
				return errors.New("no data file (pass it as an argument or set page_replacement.data_path in the config)")
			}

			frameCount, refs, err := pagereplace.ReadReferenceString(dataPath)
			if err != nil {
				return err
			}
			if len(refs) == 0 {
				return fmt.Errorf("%s: no page references", dataPath)
			}
			logger.Info("reference string loaded", "path", dataPath, "frames", frameCount, "references", len(refs))

			results, err := pagereplace.Compare(frameCount, refs)
			if err != nil {
				return err
			}

			fmt.Printf("%-13s  %12s\n", "ALGORITHM", "PAGE FAULTS")
			for _, r := range results {
				fmt.Printf("%-13s  %12d\n", r.Algorithm, r.Faults)
			}

			report := metrics.NewReport(metrics.CaseName(dataPath))
			report.AddPageReplacement(frameCount, len(refs), results)
			return finishReport(cmd.Context(), report)
		},
	}
}
