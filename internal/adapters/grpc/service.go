// internal/adapters/grpc/service.go
package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

// The backend service carries every call as a google.protobuf.Struct of
// named arguments and answers with the raw payload as a google.protobuf.Value,
// so schema drift in the payload passes through untouched.
const ServiceName = "storefront.v1.Backend"

const (
	MethodSendCode             = "SendCode"
	MethodVerifyCode           = "VerifyCode"
	MethodSetupPIN             = "SetupPIN"
	MethodLoginWithPIN         = "LoginWithPIN"
	MethodFetchSession         = "FetchSession"
	MethodFetchCustomers       = "FetchCustomers"
	MethodCreateCustomer       = "CreateCustomer"
	MethodFetchCustomer        = "FetchCustomer"
	MethodUpdateCustomer       = "UpdateCustomer"
	MethodFetchDashboard       = "FetchDashboard"
	MethodFetchBucket          = "FetchBucket"
	MethodMutateOrder          = "MutateOrder"
	MethodFetchPayments        = "FetchPayments"
	MethodFetchPendingPayments = "FetchPendingPayments"
	MethodRecordPayment        = "RecordPayment"
	MethodFetchNotifications   = "FetchNotifications"
	MethodMarkNotificationRead = "MarkNotificationRead"
)

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// args wraps the request struct with typed accessors.
type args struct{ s *structpb.Struct }

func (a args) value(name string) *structpb.Value {
	if a.s == nil {
		return nil
	}
	return a.s.GetFields()[name]
}

func (a args) str(name string) string {
	return a.value(name).GetStringValue()
}

func (a args) int(name string) int64 {
	return int64(a.value(name).GetNumberValue())
}

func (a args) fields(name string) map[string]any {
	st := a.value(name).GetStructValue()
	if st == nil {
		return nil
	}
	return st.AsMap()
}

func (a args) tenant() domain.TenantRef {
	return domain.TenantRef{ID: a.int("tenant_id"), Code: a.str("tenant_code")}
}

type handlerFunc func(ctx context.Context, b ports.BackendPort, a args) (any, error)

var handlers = map[string]handlerFunc{
	MethodSendCode: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.SendCode(ctx, a.str("phone"))
	},
	MethodVerifyCode: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.VerifyCode(ctx, a.str("phone"), a.str("code"), a.str("name"), a.int("tenant_id"))
	},
	MethodSetupPIN: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.SetupPIN(ctx, a.int("tenant_id"), a.str("pin"))
	},
	MethodLoginWithPIN: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.LoginWithPIN(ctx, a.str("phone"), a.str("pin"))
	},
	MethodFetchSession: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchSession(ctx, a.int("tenant_id"))
	},
	MethodFetchCustomers: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchCustomers(ctx, a.int("tenant_id"))
	},
	MethodCreateCustomer: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.CreateCustomer(ctx, a.int("tenant_id"), a.fields("fields"))
	},
	MethodFetchCustomer: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchCustomer(ctx, a.int("tenant_id"), a.int("location_id"))
	},
	MethodUpdateCustomer: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.UpdateCustomer(ctx, a.int("tenant_id"), a.int("location_id"), a.fields("fields"))
	},
	MethodFetchDashboard: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchDashboard(ctx, a.int("tenant_id"))
	},
	MethodFetchBucket: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchBucket(ctx, a.tenant(), domain.Bucket(a.str("bucket")))
	},
	MethodMutateOrder: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.MutateOrder(ctx, a.int("order_id"), a.tenant(), domain.OrderAction(a.str("action")), a.fields("fields"))
	},
	MethodFetchPayments: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchPayments(ctx, a.int("tenant_id"))
	},
	MethodFetchPendingPayments: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchPendingPayments(ctx, a.int("tenant_id"))
	},
	MethodRecordPayment: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.RecordPayment(ctx, a.int("tenant_id"), a.fields("fields"))
	},
	MethodFetchNotifications: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.FetchNotifications(ctx, a.int("tenant_id"))
	},
	MethodMarkNotificationRead: func(ctx context.Context, b ports.BackendPort, a args) (any, error) {
		return b.MarkNotificationRead(ctx, a.int("notification_id"))
	},
}

// ServiceDesc describes the backend service for grpc.Server.RegisterService.
// The registered implementation must be a ports.BackendPort.
func ServiceDesc() *grpc.ServiceDesc {
	desc := &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*ports.BackendPort)(nil),
		Streams:     []grpc.StreamDesc{},
		Metadata:    "storefront/v1/backend.proto",
	}
	for name, h := range handlers {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: name,
			Handler:    unaryHandler(name, h),
		})
	}
	return desc
}

func unaryHandler(method string, h handlerFunc) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		invoke := func(ctx context.Context, req any) (any, error) {
			out, err := h(ctx, srv.(ports.BackendPort), args{s: req.(*structpb.Struct)})
			if err != nil {
				return nil, toStatus(err)
			}
			v, err := structpb.NewValue(out)
			if err != nil {
				return nil, status.Errorf(codes.Internal, "encode response: %v", err)
			}
			return v, nil
		}
		if interceptor == nil {
			return invoke(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		return interceptor(ctx, in, info, invoke)
	}
}

func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrWriteConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, domain.ErrNoTenant):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}

func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, st.Message())
	case codes.Aborted:
		return fmt.Errorf("%w: %s", domain.ErrWriteConflict, st.Message())
	case codes.InvalidArgument:
		if st.Message() == domain.ErrNoTenant.Error() {
			return domain.ErrNoTenant
		}
	case codes.NotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, st.Message())
	}
	return err
}
