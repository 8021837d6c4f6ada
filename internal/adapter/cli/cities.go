package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	findhttp "github.com/airfare-routefinder/route-finder/internal/adapter/http"
)

func newCitiesCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List the selectable cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := root.components.Catalog
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(findhttp.ToCitiesResponseDTO(catalog))
			}

			for _, c := range catalog.Cities {
				var marks string
				switch c.Name {
				case catalog.DefaultFromCity:
					marks = "  (default from)"
				case catalog.DefaultToCity:
					marks = "  (default to)"
				}
				fmt.Fprintln(out, c.Name+marks)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
