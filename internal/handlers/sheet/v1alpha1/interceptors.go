package v1alpha1

import (
	"context"
	"log/slog"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/vop-sheet/internal/pkg/idgen"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "x-request-id"

// RequestIDInterceptor tags each call with the caller's x-request-id, or a
// generated one, adds it to the logging fields and echoes it in the response
// header. Chain it ahead of the logging interceptor.
func RequestIDInterceptor(gen idgen.Generator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (interface{}, error) {
		id := incomingRequestID(ctx)
		if id == "" {
			id = gen.Generate()
		}

		ctx = grpc_logging.InjectFields(ctx, grpc_logging.Fields{"request_id", id})
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id)); err != nil {
			slog.DebugContext(ctx, "failed to set request id header",
				"method", info.FullMethod,
				"error", err.Error())
		}
		return next(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(RequestIDHeader); len(values) > 0 {
		return values[0]
	}
	return ""
}
