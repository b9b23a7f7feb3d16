package command

import (
	"context"
	"fmt"

	"github.com/pingcap-incubator/noticeboard/client"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newGetCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <title>",
		Short: "show the first note with the given title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, c client.Client) error {
				note, err := c.GetNoteByTitle(ctx, args[0])
				if errors.Cause(err) == client.ErrNoteNotFound {
					return fmt.Errorf("note %q not found", args[0])
				}
				if err != nil {
					return err
				}
				printNote(cmd.OutOrStdout(), note)
				return nil
			})
		},
	}
}
