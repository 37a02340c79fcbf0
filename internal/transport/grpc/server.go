package grpcx

import (
	"context"
	"log/slog"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName     = "rooms.v1.RoomService"
	ListRoomsMethod = "/" + ServiceName + "/ListRooms"
)

// RoomServiceServer — ответ ListRooms: ListValue из Struct-ов с полями представления комнаты.
type RoomServiceServer interface {
	ListRooms(ctx context.Context, in *emptypb.Empty) (*structpb.ListValue, error)
}

type RoomLister interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

type Server struct {
	roomSvc RoomLister
}

func NewServer(roomSvc RoomLister) *Server {
	return &Server{roomSvc: roomSvc}
}

var roomServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RoomServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListRooms", Handler: listRoomsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rooms/v1/rooms.proto",
}

func listRoomsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ListRooms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListRoomsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ListRooms(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Register регистрирует RoomService и стандартный grpc.health.v1.Health.
func Register(grpcServer *grpc.Server, s *Server) *health.Server {
	grpcServer.RegisterService(&roomServiceDesc, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)
	return hs
}

func (s *Server) ListRooms(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	rooms, err := s.roomSvc.ListRooms(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "grpc.ListRooms:", slog.Any("err", err))
		return nil, status.Error(codes.Internal, "internal server error")
	}

	out := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(rooms))}
	for _, rm := range rooms {
		st, err := roomToStruct(rm)
		if err != nil {
			slog.ErrorContext(ctx, "grpc.ListRooms: encode room", slog.Int64("room_id", rm.ID), slog.Any("err", err))
			return nil, status.Error(codes.Internal, "internal server error")
		}
		out.Values = append(out.Values, structpb.NewStructValue(st))
	}
	return out, nil
}

func roomToStruct(rm domain.Room) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":              rm.ID,
		"code":            rm.Code,
		"host":            rm.Host,
		"guest_can_pause": rm.GuestCanPause,
		"votes_to_skip":   rm.VotesToSkip,
		"created_at":      rm.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// ListRooms — клиентский вызов RoomService/ListRooms по готовому соединению.
func ListRooms(ctx context.Context, cc grpc.ClientConnInterface, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := cc.Invoke(ctx, ListRoomsMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
