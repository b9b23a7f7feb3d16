package command

import (
	"context"
	"fmt"

	"github.com/pingcap-incubator/noticeboard/client"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/spf13/cobra"
)

func newListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <mail>",
		Short: "stream the notes written by the author with the given mail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, c client.Client) error {
				count := 0
				err := c.WatchNotesByAuthor(ctx, args[0], func(n *noticeboardpb.Note) error {
					printNote(cmd.OutOrStdout(), n)
					count++
					return nil
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d note(s)\n", count)
				return nil
			})
		},
	}
}
