package command

import (
	"context"
	"fmt"

	"github.com/pingcap-incubator/noticeboard/board/config"
	"github.com/pingcap-incubator/noticeboard/client"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/spf13/cobra"
)

func newAddCommand(opts *globalOptions) *cobra.Command {
	var (
		file string
		spec config.NoteSpec
	)
	cmd := &cobra.Command{
		Use:   "add [<title> <content>]",
		Short: "append notes to the board",
		Long: "Append a single note given by title and content, or every [[note]] table of a TOML file given with " +
			"--file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var notes []*noticeboardpb.Note
			switch {
			case file != "" && len(args) == 0:
				var err error
				if notes, err = config.LoadNotesFile(file); err != nil {
					return err
				}
			case file == "" && len(args) == 2:
				spec.Title, spec.Content = args[0], args[1]
				notes = append(notes, spec.Note())
			default:
				return fmt.Errorf("either --file or <title> <content> is required")
			}
			return withClient(cmd, opts, func(ctx context.Context, c client.Client) error {
				if err := c.AddNotes(ctx, notes); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %d note(s)\n", len(notes))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML file with [[note]] tables")
	cmd.Flags().StringVar(&spec.Nickname, "nickname", "", "author nickname")
	cmd.Flags().StringVar(&spec.Mail, "mail", "", "author mail")
	return cmd
}
