package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbourn/sejm-prints-backend/internal/classify"
	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/sysutil"
)

func newClassifyCmd() *cobra.Command {
	var (
		delivered string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "classify <title>",
		Short: "Classify a print title",
		Long: `Derive type, status, priority and summary for a print title.

The print is treated as delivered today unless --delivered is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := sysutil.SystemClock.Now()
			p := domain.Print{Title: args[0], DeliveryDate: now}
			if delivered != "" {
				d, err := time.ParseInLocation(time.DateOnly, delivered, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --delivered value: %w", err)
				}
				p.DeliveryDate = d
			}
			e := classify.Enrich(p, now)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(e)
			}
			fmt.Fprintf(out, "type:      %s\n", e.Type)
			fmt.Fprintf(out, "status:    %s\n", e.Status)
			fmt.Fprintf(out, "priority:  %s\n", e.Priority)
			fmt.Fprintf(out, "summary:   %s\n", e.Summary)
			fmt.Fprintf(out, "delivered: %s (%d days)\n", e.FormattedDate, e.DaysAge)
			return nil
		},
	}
	cmd.Flags().StringVar(&delivered, "delivered", "", "delivery date as YYYY-MM-DD")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the enriched print as JSON")
	return cmd
}
