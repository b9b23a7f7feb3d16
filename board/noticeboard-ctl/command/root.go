package command

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pingcap-incubator/noticeboard/client"
	"github.com/pingcap-incubator/noticeboard/pkg/grpcutil"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/spf13/cobra"
)

const defaultAddr = "127.0.0.1:9000"

type globalOptions struct {
	addr     string
	timeout  time.Duration
	security grpcutil.SecurityOption
}

// NewRootCommand returns the noticeboard-ctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:           "noticeboard-ctl",
		Short:         "Noticeboard command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.addr, "addr", "u", defaultAddr, "noticeboard server address")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout of a whole command, 0 means no timeout")
	flags.StringVar(&opts.security.CAPath, "cacert", "", "path of file that contains list of trusted SSL CAs")
	flags.StringVar(&opts.security.CertPath, "cert", "", "path of file that contains X509 certificate in PEM format")
	flags.StringVar(&opts.security.KeyPath, "key", "", "path of file that contains X509 key in PEM format")

	rootCmd.AddCommand(
		newGetCommand(opts),
		newListCommand(opts),
		newAddCommand(opts),
	)
	return rootCmd
}

// withClient runs fn with a connected client, bounded by the global timeout.
func withClient(cmd *cobra.Command, opts *globalOptions, fn func(ctx context.Context, c client.Client) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}
	c, err := client.NewClient(ctx, opts.addr, opts.security)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(ctx, c)
}

func printNote(w io.Writer, n *noticeboardpb.Note) {
	fmt.Fprintf(w, "%s\n", n.GetTitle())
	if a := n.GetAuthor(); a != nil {
		fmt.Fprintf(w, "  by %s <%s>\n", a.GetNickname(), a.GetMail())
	}
	fmt.Fprintf(w, "  %s\n", n.GetContent())
}
