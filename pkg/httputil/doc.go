// Package httputil holds the HTTP plumbing of the arrange server.
//
// # Responses
//
// [WriteJSON] and [WriteError] produce the JSON bodies of the API. Errors
// carrying an [errors.Code] map to a status with [errors.HTTPStatus]:
//
//	{"error": "INVALID_DIRECTION", "message": "root: unknown direction \"up\"", "request_id": "…"}
//
// # Middleware
//
//   - [RequestID]: assigns each request a UUID and echoes it in X-Request-ID
//   - [Observe]: reports requests to the [observability.HTTPHooks] registry
//
// Both are plain func(http.Handler) http.Handler values, so they plug into
// a chi router with Use.
package httputil
