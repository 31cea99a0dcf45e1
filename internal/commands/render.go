package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerforms/ledgerforms/internal/description"
)

func newRenderCommand() *cobra.Command {
	var tag, text, route, from, to, direction, note string
	var repeat int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Regenerate a description from structured fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suffix := description.Suffix{Repeat: repeat, Note: note}

			var shape description.Shape
			switch {
			case route != "":
				shape = description.BusTrip{Tag: tag, Route: route, From: from, To: to, Suffix: suffix}
			case from != "" || to != "":
				dir := description.DirectionOneWay
				if direction == string(description.DirectionRoundTrip) {
					dir = description.DirectionRoundTrip
				}
				shape = description.Trip{Tag: tag, From: from, Direction: dir, To: to, Suffix: suffix}
			case tag != "":
				shape = description.General{Tag: tag, Text: text, Suffix: suffix}
			default:
				shape = description.Annotation{Text: text, Suffix: suffix}
			}

			fmt.Fprintln(cmd.OutOrStdout(), shape.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "description tag")
	cmd.Flags().StringVar(&text, "text", "", "free text")
	cmd.Flags().StringVar(&route, "route", "", "bus route (renders a bus trip)")
	cmd.Flags().StringVar(&from, "from", "", "trip origin")
	cmd.Flags().StringVar(&to, "to", "", "trip destination")
	cmd.Flags().StringVar(&direction, "direction", string(description.DirectionOneWay), "trip direction: one-way or round-trip")
	cmd.Flags().IntVar(&repeat, "repeat", 0, "repetition count")
	cmd.Flags().StringVar(&note, "note", "", "parenthesized note")

	return cmd
}
