package noticeboardpb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec("proto")
	require.NotNil(t, c)
	_, ok := c.(codec)
	assert.True(t, ok)
}

func TestCodecKeepsNestedAuthor(t *testing.T) {
	in := &Note{
		Title:   "Hello",
		Content: "This note says hello.",
		Author:  &Author{Nickname: "Hans", Mail: "hans@gmail.com"},
	}
	data, err := codec{}.Marshal(in)
	require.Nil(t, err)

	out := new(Note)
	require.Nil(t, codec{}.Unmarshal(data, out))
	assert.Equal(t, in, out)

	// A note without author stays without author.
	data, err = codec{}.Marshal(&Note{Title: "Anonymous"})
	require.Nil(t, err)
	out = new(Note)
	require.Nil(t, codec{}.Unmarshal(data, out))
	assert.Nil(t, out.GetAuthor())
	assert.Equal(t, "", out.GetAuthor().GetMail())
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	_, err := codec{}.Marshal("not a message")
	assert.NotNil(t, err)
	assert.NotNil(t, codec{}.Unmarshal(nil, new(int)))
}

func TestCloneNote(t *testing.T) {
	assert.Nil(t, CloneNote(nil))

	in := &Note{Title: "Hello", Author: &Author{Mail: "hans@gmail.com"}}
	out := CloneNote(in)
	assert.Equal(t, in, out)

	out.Author.Mail = "lisa@gmail.com"
	assert.Equal(t, "hans@gmail.com", in.Author.Mail)
}
