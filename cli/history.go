package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List persisted simulation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if st == nil {
				return errors.New("no database configured (set --db or db_path in the config)")
			}
			defer st.Close()
			if err := st.Migrate(cmd.Context()); err != nil {
				return err
			}

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			fmt.Printf("%-36s  %-20s  %-19s  %8s  %8s\n", "RUN ID", "CASE", "CREATED", "POLICIES", "PAGEALGS")
			for _, r := range runs {
				fmt.Printf("%-36s  %-20s  %-19s  %8d  %8d\n",
					r.RunID, r.CaseName, r.CreatedAt.Local().Format(time.DateTime), r.PolicyResults, r.PageResults)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
