package server

import (
	"context"
	"io"

	"github.com/pingcap-incubator/noticeboard/board/config"
	"github.com/pingcap-incubator/noticeboard/board/storage"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ noticeboardpb.NoticeboardServer = new(Server)

// Server is a Noticeboard server, it 'faces outwards', answering clients over gRPC. All notes live in its storage;
// handlers never keep references to the board of their own.
type Server struct {
	storage          storage.Storage
	streamBufferSize int

	activeStreams atomic.Int64
}

func NewServer(storage storage.Storage, conf *config.Config) *Server {
	boardNotesGauge.Set(float64(storage.Len()))
	return &Server{
		storage:          storage,
		streamBufferSize: conf.StreamBufferSize,
	}
}

// Stats is a point-in-time summary of the server.
type Stats struct {
	Notes         int   `json:"notes"`
	ActiveStreams int64 `json:"active-streams"`
}

func (server *Server) Stats() Stats {
	return Stats{
		Notes:         server.storage.Len(),
		ActiveStreams: server.activeStreams.Load(),
	}
}

// Notes returns every note on the board in insertion order. The result must not be modified.
func (server *Server) Notes() []*noticeboardpb.Note {
	return server.storage.Snapshot()
}

// The below functions are Server's gRPC API (implements NoticeboardServer).

// GetNoteByTitle returns the first note whose title is exactly req.Title. A missing note is reported as a NotFound
// status, never as an empty note.
func (server *Server) GetNoteByTitle(_ context.Context, req *noticeboardpb.Title) (*noticeboardpb.Note, error) {
	note, err := server.storage.GetByTitle(req.GetTitle())
	if err != nil {
		if errors.Cause(err) == storage.ErrNoteNotFound {
			return nil, status.Errorf(codes.NotFound, "note %q not found", req.GetTitle())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return note, nil
}

// ListNotesByAuthor streams every note whose author mail equals req.Mail, in board order. The notes are produced from
// the board as it was when the call started.
func (server *Server) ListNotesByAuthor(req *noticeboardpb.Author, stream noticeboardpb.Noticeboard_ListNotesByAuthorServer) error {
	server.activeStreams.Inc()
	defer server.activeStreams.Dec()

	// Returning for any reason stops the producer.
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	mail := req.GetMail()
	for res := range notesByAuthor(ctx, server.storage.Snapshot(), mail, server.streamBufferSize) {
		if res.err != nil {
			return contextErrorToStatus(res.err)
		}
		if err := stream.Send(res.note); err != nil {
			log.Warn("send to author stream failed", zap.String("mail", mail), zap.Error(err))
			return err
		}
		streamNotesCounter.Inc()
	}
	if err := ctx.Err(); err != nil {
		return contextErrorToStatus(err)
	}
	return nil
}

// AddNotes appends every received note to the board until the client closes its side of the stream. When a receive
// fails the notes appended so far stay on the board and the error is returned to the client.
func (server *Server) AddNotes(stream noticeboardpb.Noticeboard_AddNotesServer) error {
	added := 0
	for {
		note, err := stream.Recv()
		if err == io.EOF {
			log.Debug("notes added", zap.Int("count", added))
			return stream.SendAndClose(&noticeboardpb.Empty{})
		}
		if err != nil {
			ingestNotesCounter.WithLabelValues("error").Inc()
			log.Warn("add notes aborted", zap.Int("added", added), zap.Error(err))
			return err
		}
		server.storage.Append(note)
		added++
		ingestNotesCounter.WithLabelValues("ok").Inc()
		boardNotesGauge.Inc()
	}
}

func contextErrorToStatus(err error) error {
	switch err {
	case context.Canceled:
		return status.Error(codes.Canceled, err.Error())
	case context.DeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Unknown, err.Error())
}
