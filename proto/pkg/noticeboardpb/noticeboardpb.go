// Package noticeboardpb holds the wire types of the Noticeboard service
// described in proto/proto/noticeboardpb.proto.
//
// The messages carry protobuf struct tags and are encoded by the reflection
// based marshaler of gogo/protobuf, so no generated marshal code is needed.
package noticeboardpb

import (
	proto "github.com/gogo/protobuf/proto"
)

// Title is the request of GetNoteByTitle.
type Title struct {
	Title string `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
}

func (m *Title) Reset()         { *m = Title{} }
func (m *Title) String() string { return proto.CompactTextString(m) }
func (*Title) ProtoMessage()    {}

func (m *Title) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

// Author identifies who wrote a note. Mail is the key used by
// ListNotesByAuthor.
type Author struct {
	Nickname string `protobuf:"bytes,1,opt,name=nickname,proto3" json:"nickname,omitempty"`
	Mail     string `protobuf:"bytes,2,opt,name=mail,proto3" json:"mail,omitempty"`
}

func (m *Author) Reset()         { *m = Author{} }
func (m *Author) String() string { return proto.CompactTextString(m) }
func (*Author) ProtoMessage()    {}

func (m *Author) GetNickname() string {
	if m != nil {
		return m.Nickname
	}
	return ""
}

func (m *Author) GetMail() string {
	if m != nil {
		return m.Mail
	}
	return ""
}

// Note is a single entry on the board.
type Note struct {
	Title   string  `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Content string  `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	Author  *Author `protobuf:"bytes,3,opt,name=author,proto3" json:"author,omitempty"`
}

func (m *Note) Reset()         { *m = Note{} }
func (m *Note) String() string { return proto.CompactTextString(m) }
func (*Note) ProtoMessage()    {}

func (m *Note) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *Note) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

func (m *Note) GetAuthor() *Author {
	if m != nil {
		return m.Author
	}
	return nil
}

// Empty is the acknowledgement of AddNotes.
type Empty struct {
}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Title)(nil), "noticeboardpb.Title")
	proto.RegisterType((*Author)(nil), "noticeboardpb.Author")
	proto.RegisterType((*Note)(nil), "noticeboardpb.Note")
	proto.RegisterType((*Empty)(nil), "noticeboardpb.Empty")
}
