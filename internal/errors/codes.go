package errors

import (
	"google.golang.org/grpc/codes"
)

// Code classifies an Error. Values mirror the gRPC code names so they read
// the same in logs and on the wire.
type Code string

const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAborted          Code = "ABORTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:               codes.OK,
	CodeCanceled:         codes.Canceled,
	CodeDeadlineExceeded: codes.DeadlineExceeded,
	CodeInvalidArgument:  codes.InvalidArgument,
	CodeNotFound:         codes.NotFound,
	CodeAborted:          codes.Aborted,
	CodeInternal:         codes.Internal,
	CodeUnavailable:      codes.Unavailable,
}

// String returns the code name.
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the status code used when the error crosses the transport.
// Unknown codes map to codes.Unknown.
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// codeFromGRPC is the inverse of GRPCCode. Status codes this service never
// produces collapse to CodeInternal.
func codeFromGRPC(gc codes.Code) Code {
	for c, candidate := range grpcCodes {
		if candidate == gc {
			return c
		}
	}
	return CodeInternal
}
