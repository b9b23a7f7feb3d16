package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap-incubator/noticeboard/pkg/grpcutil"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
)

type Config struct {
	Addr       string `toml:"addr"`
	StatusAddr string `toml:"status-addr"`

	// Capacity of the channel between the producer of an author stream and the gRPC sender. A full channel blocks the
	// producer until the client catches up.
	StreamBufferSize int `toml:"stream-buffer-size"`

	MaxRecvMsgSize int `toml:"max-recv-msg-size"`
	// Clients pinging more often than this are disconnected.
	KeepaliveMinTime time.Duration `toml:"keepalive-min-time"`
	// How long to wait for in-flight calls on shutdown before closing connections.
	GracefulStopTimeout time.Duration `toml:"graceful-stop-timeout"`

	Log      log.Config              `toml:"log"`
	Security grpcutil.SecurityOption `toml:"security"`

	// EmptyBoard starts the service without any seed notes.
	EmptyBoard bool       `toml:"empty-board"`
	Seed       []NoteSpec `toml:"seed"`
}

// NoteSpec is the flat TOML form of a note.
type NoteSpec struct {
	Title    string `toml:"title"`
	Content  string `toml:"content"`
	Nickname string `toml:"nickname"`
	Mail     string `toml:"mail"`
}

func (s NoteSpec) Note() *noticeboardpb.Note {
	n := &noticeboardpb.Note{Title: s.Title, Content: s.Content}
	if s.Nickname != "" || s.Mail != "" {
		n.Author = &noticeboardpb.Author{Nickname: s.Nickname, Mail: s.Mail}
	}
	return n
}

const (
	KB = 1024
	MB = 1024 * KB

	minStreamBufferSize = 1
)

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.StreamBufferSize < minStreamBufferSize {
		return fmt.Errorf("stream-buffer-size must be at least %d, got %d", minStreamBufferSize, c.StreamBufferSize)
	}
	if c.MaxRecvMsgSize <= 0 {
		return fmt.Errorf("max-recv-msg-size must be greater than 0")
	}
	if (c.Security.CertPath == "") != (c.Security.KeyPath == "") {
		return fmt.Errorf("cert-path and key-path must be set together")
	}
	if c.EmptyBoard && len(c.Seed) != 0 {
		log.Warn("empty-board is set, seed notes are ignored")
	}
	return nil
}

// LoadFromFile overlays the settings found in a TOML file onto c.
func (c *Config) LoadFromFile(path string) error {
	// The decoder reuses slice elements in place, so seed entries from the file would inherit default fields.
	seed := c.Seed
	c.Seed = nil
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		c.Seed = seed
		return errors.WithStack(err)
	}
	if !meta.IsDefined("seed") {
		c.Seed = seed
	}
	return nil
}

// SeedNotes returns the notes the board starts with.
func (c *Config) SeedNotes() []*noticeboardpb.Note {
	if c.EmptyBoard {
		return nil
	}
	notes := make([]*noticeboardpb.Note, 0, len(c.Seed))
	for _, s := range c.Seed {
		notes = append(notes, s.Note())
	}
	return notes
}

// NotesFile is the TOML document accepted by `noticeboard-ctl add --file`.
type NotesFile struct {
	Notes []NoteSpec `toml:"note"`
}

func LoadNotesFile(path string) ([]*noticeboardpb.Note, error) {
	var f NotesFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.WithStack(err)
	}
	notes := make([]*noticeboardpb.Note, 0, len(f.Notes))
	for _, s := range f.Notes {
		notes = append(notes, s.Note())
	}
	return notes, nil
}

func getLogLevel() (logLevel string) {
	logLevel = "info"
	if l := os.Getenv("LOG_LEVEL"); len(l) != 0 {
		logLevel = l
	}
	return
}

// DefaultSeed is the board every fresh server starts with.
func DefaultSeed() []NoteSpec {
	return []NoteSpec{
		{Title: "Hello", Content: "This note says hello.", Nickname: "Hans", Mail: "hans@gmail.com"},
		{Title: "Goodbye", Content: "This note says goodbye.", Nickname: "Hans", Mail: "hans@gmail.com"},
		{Title: "What up", Content: "This note says what up.", Nickname: "Lisa", Mail: "lisa@gmail.com"},
	}
}

func NewDefaultConfig() *Config {
	return &Config{
		Addr:                "127.0.0.1:9000",
		StatusAddr:          "127.0.0.1:9001",
		StreamBufferSize:    4,
		MaxRecvMsgSize:      4 * MB,
		KeepaliveMinTime:    2 * time.Second,
		GracefulStopTimeout: 5 * time.Second,
		Log:                 log.Config{Level: getLogLevel(), Format: "text"},
		Seed:                DefaultSeed(),
	}
}

func NewTestConfig() *Config {
	return &Config{
		Addr:                "127.0.0.1:0",
		StreamBufferSize:    2,
		MaxRecvMsgSize:      1 * MB,
		KeepaliveMinTime:    100 * time.Millisecond,
		GracefulStopTimeout: 100 * time.Millisecond,
		Log:                 log.Config{Level: getLogLevel(), Format: "text"},
		Seed:                DefaultSeed(),
	}
}
