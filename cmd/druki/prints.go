package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbourn/sejm-prints-backend/internal/services"
)

func newPrintsCmd(a *app) *cobra.Command {
	var (
		q      services.PrintQuery
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "prints",
		Short: "List prints of the configured term",
		Long:  "Fetch the term's prints from the Sejm API and list one page, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.printService().FetchPrints(cmd.Context(), q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}
			for _, p := range page.Prints {
				fmt.Fprintf(out, "%-8s %-10s %-26s %-10s %s\n", p.Number, p.FormattedDate, p.Type, p.Status, p.Summary)
			}
			pg := page.Pagination
			fmt.Fprintf(out, "%d of %d (offset %d)\n", len(page.Prints), pg.Total, pg.Offset)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&q.Type, "type", "", "print type or alias (e.g. rządowy)")
	f.StringVar(&q.Status, "status", "", "print status (nowe, aktywne, w_trakcie, stare, archiwalne)")
	f.IntVar(&q.Limit, "limit", services.DefaultLimit, "page size")
	f.IntVar(&q.Offset, "offset", 0, "items to skip")
	f.StringVar(&q.Search, "q", "", "title search")
	f.BoolVar(&asJSON, "json", false, "print the page as JSON")
	return cmd
}
