package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	findhttp "github.com/airfare-routefinder/route-finder/internal/adapter/http"
	"github.com/airfare-routefinder/route-finder/internal/adapter/tui"
	"github.com/airfare-routefinder/route-finder/internal/domain"
)

// searchOutput is the --json shape of the search command
type searchOutput struct {
	Query  findhttp.QueryDTO  `json:"query"`
	Result findhttp.ResultDTO `json:"result"`
}

func newSearchCommand(root *rootOptions) *cobra.Command {
	var (
		from, to, rankBy string
		asJSON           bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print the result",
		Long: `Run one search and print the result.

Cities default to the catalog's default selection. The command exits non-zero
when the search fails (missing or identical cities, or the service is unavailable).

Example:
  finder search --from Delhi --to Goa --rank-by cheapest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := root.components.NewController(nil)
			defer ctrl.Close()

			if cmd.Flags().Changed("from") {
				ctrl.SetFromCity(from)
			}
			if cmd.Flags().Changed("to") {
				ctrl.SetToCity(to)
			}
			if cmd.Flags().Changed("rank-by") {
				r, err := domain.ParseRankBy(rankBy)
				if err != nil {
					return err
				}
				if err := ctrl.SetRankBy(r); err != nil {
					return err
				}
			}

			result := ctrl.RunSearch(cmd.Context())

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(searchOutput{
					Query:  findhttp.ToQueryDTO(ctrl.Query()),
					Result: findhttp.ToResultDTO(result),
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, tui.RenderPlain(result))
			}

			if result.State() == domain.StateFailed {
				return ErrSearchFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Departure city")
	cmd.Flags().StringVar(&to, "to", "", "Destination city")
	cmd.Flags().StringVar(&rankBy, "rank-by", domain.DefaultRankBy.String(), "Fastest or Cheapest")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
