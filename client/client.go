package client

import (
	"context"
	"io"

	"github.com/pingcap-incubator/noticeboard/pkg/grpcutil"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Client is a Noticeboard client.
// It should not be used after calling Close().
type Client interface {
	// GetNoteByTitle gets the first note with the given title. It returns ErrNoteNotFound if there is none.
	GetNoteByTitle(ctx context.Context, title string) (*noticeboardpb.Note, error)
	// ListNotesByAuthor collects every note written by mail, in board order.
	ListNotesByAuthor(ctx context.Context, mail string) ([]*noticeboardpb.Note, error)
	// WatchNotesByAuthor calls fn for every note written by mail as soon as it arrives. Returning an error from fn
	// abandons the stream and the server stops producing; that error is returned.
	WatchNotesByAuthor(ctx context.Context, mail string, fn func(*noticeboardpb.Note) error) error
	// AddNotes sends notes to be appended to the board in order. Notes the server received before a failure stay on
	// the board.
	AddNotes(ctx context.Context, notes []*noticeboardpb.Note) error
	// Close closes the client.
	Close()
}

// ErrNoteNotFound is returned by GetNoteByTitle when the board has no note with the title.
var ErrNoteNotFound = errors.New("[noticeboard] note not found")

type client struct {
	conn  *grpc.ClientConn
	board noticeboardpb.NoticeboardClient
}

// NewClient creates a Noticeboard client connected to addr.
func NewClient(ctx context.Context, addr string, security grpcutil.SecurityOption, opts ...grpc.DialOption) (Client, error) {
	log.Debug("[noticeboard] create client", zap.String("addr", addr))
	conn, err := grpcutil.GetClientConn(ctx, addr, security, opts...)
	if err != nil {
		return nil, err
	}
	return NewClientWithConn(conn), nil
}

// NewClientWithConn creates a Noticeboard client over an established connection. Close closes conn.
func NewClientWithConn(conn *grpc.ClientConn) Client {
	return &client{
		conn:  conn,
		board: noticeboardpb.NewNoticeboardClient(conn),
	}
}

func (c *client) GetNoteByTitle(ctx context.Context, title string) (*noticeboardpb.Note, error) {
	note, err := c.board.GetNoteByTitle(ctx, &noticeboardpb.Title{Title: title})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNoteNotFound
		}
		return nil, errors.WithStack(err)
	}
	return note, nil
}

func (c *client) ListNotesByAuthor(ctx context.Context, mail string) ([]*noticeboardpb.Note, error) {
	var notes []*noticeboardpb.Note
	err := c.WatchNotesByAuthor(ctx, mail, func(n *noticeboardpb.Note) error {
		notes = append(notes, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *client) WatchNotesByAuthor(ctx context.Context, mail string, fn func(*noticeboardpb.Note) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.board.ListNotesByAuthor(ctx, &noticeboardpb.Author{Mail: mail})
	if err != nil {
		return errors.WithStack(err)
	}
	for {
		note, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if err := fn(note); err != nil {
			return err
		}
	}
}

func (c *client) AddNotes(ctx context.Context, notes []*noticeboardpb.Note) error {
	stream, err := c.board.AddNotes(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, n := range notes {
		// io.EOF means the server ended the call; its status comes from CloseAndRecv.
		if err := stream.Send(n); err == io.EOF {
			break
		} else if err != nil {
			return errors.WithStack(err)
		}
	}
	if _, err := stream.CloseAndRecv(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *client) Close() {
	if err := c.conn.Close(); err != nil {
		log.Warn("[noticeboard] close connection failed", zap.Error(err))
	}
}
