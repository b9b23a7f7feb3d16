package server

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/pingcap-incubator/noticeboard/board/config"
	"github.com/pingcap-incubator/noticeboard/board/storage"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// listStream collects what ListNotesByAuthor sends. failAfter >= 0 makes every Send after that many notes fail.
type listStream struct {
	grpc.ServerStream
	ctx       context.Context
	sent      []*noticeboardpb.Note
	failAfter int
}

func newListStream(ctx context.Context) *listStream {
	return &listStream{ctx: ctx, failAfter: -1}
}

func (s *listStream) Context() context.Context { return s.ctx }

func (s *listStream) Send(n *noticeboardpb.Note) error {
	if s.failAfter >= 0 && len(s.sent) >= s.failAfter {
		return status.Error(codes.Unavailable, "transport is closing")
	}
	s.sent = append(s.sent, n)
	return nil
}

func (s *listStream) titles() []string {
	titles := make([]string, 0, len(s.sent))
	for _, n := range s.sent {
		titles = append(titles, n.Title)
	}
	return titles
}

// addStream replays notes to AddNotes, then returns err (io.EOF when nil).
type addStream struct {
	grpc.ServerStream
	notes  []*noticeboardpb.Note
	err    error
	closed bool
}

func (s *addStream) Context() context.Context { return context.Background() }

func (s *addStream) Recv() (*noticeboardpb.Note, error) {
	if len(s.notes) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	n := s.notes[0]
	s.notes = s.notes[1:]
	return n, nil
}

func (s *addStream) SendAndClose(*noticeboardpb.Empty) error {
	s.closed = true
	return nil
}

func newSeededServer() (*Server, *storage.MemStorage) {
	conf := config.NewTestConfig()
	mem := storage.NewMemStorage(conf.SeedNotes()...)
	return NewServer(mem, conf), mem
}

func TestGetNoteByTitle(t *testing.T) {
	server, _ := newSeededServer()

	note, err := server.GetNoteByTitle(context.Background(), &noticeboardpb.Title{Title: "Hello"})
	require.Nil(t, err)
	assert.Equal(t, "This note says hello.", note.Content)
	assert.Equal(t, "Hans", note.Author.Nickname)
	assert.Equal(t, "hans@gmail.com", note.Author.Mail)

	note, err = server.GetNoteByTitle(context.Background(), &noticeboardpb.Title{Title: "What up"})
	require.Nil(t, err)
	assert.Equal(t, "Lisa", note.GetAuthor().GetNickname())
}

func TestGetNoteByTitleNotFound(t *testing.T) {
	server, _ := newSeededServer()

	for _, title := range []string{"Nope", "hello", "Hello ", ""} {
		note, err := server.GetNoteByTitle(context.Background(), &noticeboardpb.Title{Title: title})
		assert.Nil(t, note)
		assert.Equal(t, codes.NotFound, status.Code(err), title)
	}
}

func TestListNotesByAuthor(t *testing.T) {
	server, _ := newSeededServer()

	stream := newListStream(context.Background())
	require.Nil(t, server.ListNotesByAuthor(&noticeboardpb.Author{Mail: "hans@gmail.com"}, stream))
	assert.Equal(t, []string{"Hello", "Goodbye"}, stream.titles())

	stream = newListStream(context.Background())
	require.Nil(t, server.ListNotesByAuthor(&noticeboardpb.Author{Mail: "lisa@gmail.com"}, stream))
	assert.Equal(t, []string{"What up"}, stream.titles())

	// Nickname plays no part in matching.
	stream = newListStream(context.Background())
	require.Nil(t, server.ListNotesByAuthor(&noticeboardpb.Author{Nickname: "Lisa", Mail: "hans@gmail.com"}, stream))
	assert.Equal(t, []string{"Hello", "Goodbye"}, stream.titles())
}

func TestListNotesByUnknownAuthor(t *testing.T) {
	server, _ := newSeededServer()

	stream := newListStream(context.Background())
	require.Nil(t, server.ListNotesByAuthor(&noticeboardpb.Author{Mail: "unknown@x.com"}, stream))
	assert.Len(t, stream.sent, 0)

	// An empty mail never matches a note without author.
	server.storage.Append(&noticeboardpb.Note{Title: "Anonymous"})
	stream = newListStream(context.Background())
	require.Nil(t, server.ListNotesByAuthor(&noticeboardpb.Author{}, stream))
	assert.Len(t, stream.sent, 0)
}

func TestListNotesByAuthorKeepsDuplicatesInOrder(t *testing.T) {
	server, mem := newSeededServer()
	mem.Append(
		&noticeboardpb.Note{Title: "Hello", Content: "again", Author: &noticeboardpb.Author{Mail: "hans@gmail.com"}},
		&noticeboardpb.Note{Title: "Later", Author: &noticeboardpb.Author{Mail: "lisa@gmail.com"}},
		&noticeboardpb.Note{Title: "Last", Author: &noticeboardpb.Author{Mail: "hans@gmail.com"}},
	)

	stream := newListStream(context.Background())
	require.Nil(t, server.ListNotesByAuthor(&noticeboardpb.Author{Mail: "hans@gmail.com"}, stream))
	assert.Equal(t, []string{"Hello", "Goodbye", "Hello", "Last"}, stream.titles())
	assert.Equal(t, "again", stream.sent[2].Content)
}

func TestListNotesByAuthorSendFailureStopsProducer(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server, mem := newSeededServer()
	for i := 0; i < 100; i++ {
		mem.Append(&noticeboardpb.Note{Title: fmt.Sprintf("n%d", i), Author: &noticeboardpb.Author{Mail: "hans@gmail.com"}})
	}

	stream := newListStream(context.Background())
	stream.failAfter = 3
	err := server.ListNotesByAuthor(&noticeboardpb.Author{Mail: "hans@gmail.com"}, stream)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Len(t, stream.sent, 3)
	assert.Equal(t, int64(0), server.Stats().ActiveStreams)
}

func TestListNotesByAuthorCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server, _ := newSeededServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := newListStream(ctx)
	err := server.ListNotesByAuthor(&noticeboardpb.Author{Mail: "hans@gmail.com"}, stream)
	assert.Equal(t, codes.Canceled, status.Code(err))
	assert.Len(t, stream.sent, 0)
}

func TestAddNotes(t *testing.T) {
	server, mem := newSeededServer()

	var notes []*noticeboardpb.Note
	for i := 0; i < 5; i++ {
		notes = append(notes, &noticeboardpb.Note{
			Title:   fmt.Sprintf("added %d", i),
			Content: fmt.Sprintf("content %d", i),
			Author:  &noticeboardpb.Author{Nickname: "Ann", Mail: "ann@example.com"},
		})
	}
	stream := &addStream{notes: append([]*noticeboardpb.Note(nil), notes...)}
	require.Nil(t, server.AddNotes(stream))
	assert.True(t, stream.closed)
	assert.Equal(t, 3+len(notes), mem.Len())

	for _, want := range notes {
		got, err := server.GetNoteByTitle(context.Background(), &noticeboardpb.Title{Title: want.Title})
		require.Nil(t, err)
		assert.Equal(t, want, got)
	}

	list := newListStream(context.Background())
	require.Nil(t, server.ListNotesByAuthor(&noticeboardpb.Author{Mail: "ann@example.com"}, list))
	assert.Equal(t, []string{"added 0", "added 1", "added 2", "added 3", "added 4"}, list.titles())
}

func TestAddNotesEmptyStream(t *testing.T) {
	server, mem := newSeededServer()
	stream := &addStream{}
	require.Nil(t, server.AddNotes(stream))
	assert.True(t, stream.closed)
	assert.Equal(t, 3, mem.Len())
}

func TestAddNotesKeepsDuplicates(t *testing.T) {
	server, mem := newSeededServer()
	stream := &addStream{notes: []*noticeboardpb.Note{{Title: "Hello", Content: "shadowed"}}}
	require.Nil(t, server.AddNotes(stream))
	assert.Equal(t, 4, mem.Len())

	// The first Hello still wins.
	note, err := server.GetNoteByTitle(context.Background(), &noticeboardpb.Title{Title: "Hello"})
	require.Nil(t, err)
	assert.Equal(t, "This note says hello.", note.Content)
}

func TestAddNotesPartialFailure(t *testing.T) {
	server, mem := newSeededServer()
	recvErr := status.Error(codes.Canceled, "client went away")
	stream := &addStream{
		notes: []*noticeboardpb.Note{{Title: "kept 1"}, {Title: "kept 2"}},
		err:   recvErr,
	}

	err := server.AddNotes(stream)
	assert.Equal(t, recvErr, errors.Cause(err))
	assert.False(t, stream.closed)
	assert.Equal(t, 5, mem.Len())

	_, err = server.GetNoteByTitle(context.Background(), &noticeboardpb.Title{Title: "kept 2"})
	assert.Nil(t, err)
}

func TestStats(t *testing.T) {
	server, _ := newSeededServer()
	assert.Equal(t, Stats{Notes: 3}, server.Stats())
	assert.Len(t, server.Notes(), 3)
}

func TestAddNotesConcurrentKeepsBoardGauge(t *testing.T) {
	server, mem := newSeededServer()
	assert.Equal(t, float64(3), testutil.ToFloat64(boardNotesGauge))

	const writers, perWriter = 16, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		var notes []*noticeboardpb.Note
		for i := 0; i < perWriter; i++ {
			notes = append(notes, &noticeboardpb.Note{Title: fmt.Sprintf("w%d-%d", w, i)})
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Nil(t, server.AddNotes(&addStream{notes: notes}))
		}()
	}
	wg.Wait()

	assert.Equal(t, 3+writers*perWriter, mem.Len())
	assert.Equal(t, float64(mem.Len()), testutil.ToFloat64(boardNotesGauge))
}
