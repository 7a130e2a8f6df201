// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives the request context and a request value already
// decoded by the configured binders, and returns a Response that renders
// itself:
//
//	type gradeRequest struct {
//		Score float64 `json:"score"`
//	}
//
//	r.Post("/grade", handler.Wrap(func(ctx context.Context, req gradeRequest) handler.Response {
//		return handler.JSON(rules.GetGrade(req.Score))
//	}, handler.WithBinders[gradeRequest](binder.JSON())))
//
// Errors from binding or rendering, and error responses built with JSONError,
// share one envelope: {"error": {"code": ..., "message": ..., "details": ...}}.
package handler
