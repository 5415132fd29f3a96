package infra

import (
	"errors"
	"log/slog"
)

type GatewayErrorKind string

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Admin API error: "+msg, logArgs...)

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Gateway error kinds
const (
	KindTransport    GatewayErrorKind = "TRANSPORT"
	KindUnauthorized GatewayErrorKind = "UNAUTHORIZED"
	KindThrottled    GatewayErrorKind = "THROTTLED"
	KindUpstream     GatewayErrorKind = "UPSTREAM"
	KindDecode       GatewayErrorKind = "DECODE"
	KindGraphQL      GatewayErrorKind = "GRAPHQL"
)
