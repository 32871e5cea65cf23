package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-reference/internal/interfaces/web/view"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type mappedError struct {
	HTTPStatus int
	Message    string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "web.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writePage renders the full document before touching w, so a render error
// can still become an error page.
func writePage(ctx context.Context, w http.ResponseWriter, status int, page templ.Component) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := page.Render(ctx, buf); err != nil {
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	writePage(ctx, w, mapped.HTTPStatus, view.Layout(http.StatusText(mapped.HTTPStatus), nil,
		view.ErrorPage(mapped.HTTPStatus, mapped.Message)))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	const status = http.StatusInternalServerError

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	page := view.Layout(http.StatusText(status), nil, view.ErrorPage(status, "Something went wrong while building this page."))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(ctx, buf); err != nil {
		_, _ = w.Write([]byte("internal server error"))
		return
	}
	_, _ = w.Write(buf.B)
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "web.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Message:    err.Error(),
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Message:    "We could not find what you were looking for.",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Message:    "The stats service is temporarily unavailable. Please try again shortly.",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Message:    "The stats service returned an error.",
		}
	}
}
