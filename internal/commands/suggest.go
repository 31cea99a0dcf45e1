package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerforms/ledgerforms/internal/model"
	"github.com/ledgerforms/ledgerforms/internal/voucher"
)

func newSuggestCommand() *cobra.Command {
	var bookDir string
	var confirmedCode string

	cmd := &cobra.Command{
		Use:   "suggest <tag>",
		Short: "Show the suggested accounts for a description tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := voucher.LoadService(bookDir)
			if err != nil {
				return err
			}

			var confirmed *model.Account
			if confirmedCode != "" {
				a, ok := svc.Accounts().Get(confirmedCode)
				if !ok {
					return fmt.Errorf("unknown account %s", confirmedCode)
				}
				confirmed = &a
			}

			sel := svc.SuggestAccounts(args[0], confirmed)
			if len(sel.Options) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no suggestions")
				return nil
			}

			for i, a := range sel.Options {
				marker := " "
				if i == sel.Selected {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, a.DisplayText())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")
	cmd.Flags().StringVar(&confirmedCode, "confirmed", "", "account already chosen for the row being edited")

	return cmd
}
