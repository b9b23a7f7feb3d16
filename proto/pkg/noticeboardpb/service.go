package noticeboardpb

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// NoticeboardClient is the client API for Noticeboard service.
type NoticeboardClient interface {
	// GetNoteByTitle returns the first note with the given title.
	GetNoteByTitle(ctx context.Context, in *Title, opts ...grpc.CallOption) (*Note, error)
	// ListNotesByAuthor streams every note whose author mail matches.
	ListNotesByAuthor(ctx context.Context, in *Author, opts ...grpc.CallOption) (Noticeboard_ListNotesByAuthorClient, error)
	// AddNotes appends every received note to the board.
	AddNotes(ctx context.Context, opts ...grpc.CallOption) (Noticeboard_AddNotesClient, error)
}

type noticeboardClient struct {
	cc *grpc.ClientConn
}

func NewNoticeboardClient(cc *grpc.ClientConn) NoticeboardClient {
	return &noticeboardClient{cc}
}

func (c *noticeboardClient) GetNoteByTitle(ctx context.Context, in *Title, opts ...grpc.CallOption) (*Note, error) {
	out := new(Note)
	err := c.cc.Invoke(ctx, "/noticeboardpb.Noticeboard/GetNoteByTitle", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticeboardClient) ListNotesByAuthor(ctx context.Context, in *Author, opts ...grpc.CallOption) (Noticeboard_ListNotesByAuthorClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Noticeboard_serviceDesc.Streams[0], "/noticeboardpb.Noticeboard/ListNotesByAuthor", opts...)
	if err != nil {
		return nil, err
	}
	x := &noticeboardListNotesByAuthorClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Noticeboard_ListNotesByAuthorClient interface {
	Recv() (*Note, error)
	grpc.ClientStream
}

type noticeboardListNotesByAuthorClient struct {
	grpc.ClientStream
}

func (x *noticeboardListNotesByAuthorClient) Recv() (*Note, error) {
	m := new(Note)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *noticeboardClient) AddNotes(ctx context.Context, opts ...grpc.CallOption) (Noticeboard_AddNotesClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Noticeboard_serviceDesc.Streams[1], "/noticeboardpb.Noticeboard/AddNotes", opts...)
	if err != nil {
		return nil, err
	}
	x := &noticeboardAddNotesClient{stream}
	return x, nil
}

type Noticeboard_AddNotesClient interface {
	Send(*Note) error
	CloseAndRecv() (*Empty, error)
	grpc.ClientStream
}

type noticeboardAddNotesClient struct {
	grpc.ClientStream
}

func (x *noticeboardAddNotesClient) Send(m *Note) error {
	return x.ClientStream.SendMsg(m)
}

func (x *noticeboardAddNotesClient) CloseAndRecv() (*Empty, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(Empty)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// NoticeboardServer is the server API for Noticeboard service.
type NoticeboardServer interface {
	// GetNoteByTitle returns the first note with the given title.
	GetNoteByTitle(context.Context, *Title) (*Note, error)
	// ListNotesByAuthor streams every note whose author mail matches.
	ListNotesByAuthor(*Author, Noticeboard_ListNotesByAuthorServer) error
	// AddNotes appends every received note to the board.
	AddNotes(Noticeboard_AddNotesServer) error
}

func RegisterNoticeboardServer(s *grpc.Server, srv NoticeboardServer) {
	s.RegisterService(&_Noticeboard_serviceDesc, srv)
}

func _Noticeboard_GetNoteByTitle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Title)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticeboardServer).GetNoteByTitle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/noticeboardpb.Noticeboard/GetNoteByTitle",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticeboardServer).GetNoteByTitle(ctx, req.(*Title))
	}
	return interceptor(ctx, in, info, handler)
}

func _Noticeboard_ListNotesByAuthor_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Author)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(NoticeboardServer).ListNotesByAuthor(m, &noticeboardListNotesByAuthorServer{stream})
}

type Noticeboard_ListNotesByAuthorServer interface {
	Send(*Note) error
	grpc.ServerStream
}

type noticeboardListNotesByAuthorServer struct {
	grpc.ServerStream
}

func (x *noticeboardListNotesByAuthorServer) Send(m *Note) error {
	return x.ServerStream.SendMsg(m)
}

func _Noticeboard_AddNotes_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(NoticeboardServer).AddNotes(&noticeboardAddNotesServer{stream})
}

type Noticeboard_AddNotesServer interface {
	SendAndClose(*Empty) error
	Recv() (*Note, error)
	grpc.ServerStream
}

type noticeboardAddNotesServer struct {
	grpc.ServerStream
}

func (x *noticeboardAddNotesServer) SendAndClose(m *Empty) error {
	return x.ServerStream.SendMsg(m)
}

func (x *noticeboardAddNotesServer) Recv() (*Note, error) {
	m := new(Note)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _Noticeboard_serviceDesc = grpc.ServiceDesc{
	ServiceName: "noticeboardpb.Noticeboard",
	HandlerType: (*NoticeboardServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetNoteByTitle",
			Handler:    _Noticeboard_GetNoteByTitle_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ListNotesByAuthor",
			Handler:       _Noticeboard_ListNotesByAuthor_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "AddNotes",
			Handler:       _Noticeboard_AddNotes_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "noticeboardpb.proto",
}
