package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerforms/ledgerforms/internal/voucher"
)

func newValidateCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "validate <voucher.csv>",
		Short: "Validate an in-progress voucher against every form rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := voucher.LoadService(bookDir)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening voucher: %w", err)
			}
			defer f.Close()

			v, err := voucher.ReadVoucher(f)
			if err != nil {
				return fmt.Errorf("reading voucher: %w", err)
			}

			errs := svc.Validate(v)
			if len(errs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "voucher is valid")
				return nil
			}

			for _, e := range errs {
				fmt.Fprintln(cmd.OutOrStdout(), e.Error())
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")

	return cmd
}
