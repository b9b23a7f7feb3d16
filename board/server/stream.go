package server

import (
	"context"

	"github.com/pingcap-incubator/noticeboard/pkg/logutil"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// noteResult is one item of an author stream: either a note or the reason the stream ended early.
type noteResult struct {
	note *noticeboardpb.Note
	err  error
}

func writtenBy(n *noticeboardpb.Note, mail string) bool {
	return n.GetAuthor() != nil && n.Author.Mail == mail
}

// notesByAuthor starts a producer which walks notes in order and pushes every note written by mail into the returned
// channel. The channel holds at most bufSize undelivered results; the producer blocks while it is full. The channel is
// closed when the walk completes or ctx is done, whichever comes first.
func notesByAuthor(ctx context.Context, notes []*noticeboardpb.Note, mail string, bufSize int) <-chan noteResult {
	ch := make(chan noteResult, bufSize)
	go func() {
		defer logutil.LogPanic()
		defer close(ch)

		sent := 0
		abort := func() {
			streamAbortedCounter.Inc()
			log.Warn("author stream aborted",
				zap.String("mail", mail),
				zap.Int("sent", sent),
				zap.Error(ctx.Err()))
			// Best effort, the consumer may be gone already.
			select {
			case ch <- noteResult{err: ctx.Err()}:
			default:
			}
		}

		for _, n := range notes {
			if ctx.Err() != nil {
				abort()
				return
			}
			if !writtenBy(n, mail) {
				continue
			}
			select {
			case ch <- noteResult{note: n}:
				sent++
			case <-ctx.Done():
				abort()
				return
			}
		}
		log.Debug("author stream finished", zap.String("mail", mail), zap.Int("sent", sent))
	}()
	return ch
}
