package noticeboardpb

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"google.golang.org/grpc/encoding"
)

// codecName replaces the default gRPC "proto" codec, so both ends of a
// connection encode with gogo/protobuf once this package is linked in.
const codecName = "proto"

type codec struct{}

func (codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, errors.Errorf("noticeboardpb: %T is not a proto.Message", v)
	}
	return proto.Marshal(m)
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(proto.Message)
	if !ok {
		return errors.Errorf("noticeboardpb: %T is not a proto.Message", v)
	}
	return proto.Unmarshal(data, m)
}

func (codec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(codec{})
}

// CloneNote returns a deep copy of n.
func CloneNote(n *Note) *Note {
	if n == nil {
		return nil
	}
	return proto.Clone(n).(*Note)
}
