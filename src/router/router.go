// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vsalvino/agent/src/internal/helper/gc"
)

const contentTypeJSON = "application/json"

// Request is the transport-agnostic record a route is resolved from.
// It is constructed once per invocation, consumed, and discarded.
type Request struct {
	// Path is the route path, e.g. "/phrase".
	Path string
	// Randomize reports whether the caller asked for a random phrase.
	Randomize bool
}

// Response is the transport-agnostic result of routing a Request.
// The HTTP server writes it to the client verbatim; CLI callers may print
// Body and ignore the status and content type.
type Response struct {
	StatusCode  int
	ContentType string
	Body        string
}

// PhraseSource provides the phrase served by the /phrase route.
// *phrase.Provider satisfies this interface.
type PhraseSource interface {
	Get(randomize bool) string
}

// Router maps paths and query parameters to JSON responses independent of
// any transport, so the routing contract can be tested without opening a
// socket.
type Router struct {
	phrases PhraseSource
}

// New creates a Router serving phrases from the given source.
func New(phrases PhraseSource) *Router {
	return &Router{phrases: phrases}
}

// ParseRequest builds a Request from a path and query parameters.
// The "random" query parameter is matched case-insensitively against "true";
// any other value, or its absence, disables randomization.
func ParseRequest(path string, query map[string]string) Request {
	return Request{
		Path:      path,
		Randomize: strings.EqualFold(query["random"], "true"),
	}
}

// Route maps a path and query parameters to a Response.
//
//   - "/phrase" returns 200 with a JSON body {"random": <bool>, "phrase": <string>}.
//   - Any other path returns 404 with a JSON error body naming the path.
//
// Route never lets a fault escape to the caller: any panic while building a
// response is recovered and converted to a 500 JSON error response.
func (rt *Router) Route(path string, query map[string]string) Response {
	return rt.RouteRequest(ParseRequest(path, query))
}

// RouteRequest resolves an already-parsed Request. See Route.
func (rt *Router) RouteRequest(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = ErrorResponse(http.StatusInternalServerError, fmt.Sprintf("internal error: %v", r))
		}
	}()

	switch req.Path {
	case "/phrase":
		return jsonResponse(http.StatusOK, phraseBody{
			Random: req.Randomize,
			Phrase: rt.phrases.Get(req.Randomize),
		})
	default:
		return ErrorResponse(http.StatusNotFound, fmt.Sprintf("No route found matching %s", req.Path))
	}
}

// phraseBody is the JSON body of a successful /phrase response.
type phraseBody struct {
	Random bool   `json:"random"`
	Phrase string `json:"phrase"`
}

// errorBody is the JSON body of 4xx/5xx responses.
type errorBody struct {
	Error string `json:"error"`
}

// jsonResponse encodes payload into a pooled buffer and wraps it in a
// Response. Encoding failures degrade to a 500 error response instead of
// propagating.
func jsonResponse(status int, payload any) Response {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return ErrorResponse(http.StatusInternalServerError, fmt.Sprintf("failed to encode response: %v", err))
	}

	return Response{
		StatusCode:  status,
		ContentType: contentTypeJSON,
		Body:        strings.TrimSuffix(buf.String(), "\n"),
	}
}

// ErrorResponse builds a JSON error Response with the given status and
// message. The HTTP server also uses it for transport-level rejections
// (e.g. 405) so every error a client sees has the same JSON shape.
func ErrorResponse(status int, msg string) Response {
	data, err := json.Marshal(errorBody{Error: msg})
	if err != nil {
		// Marshaling a flat struct of strings cannot realistically fail;
		// keep a literal fallback so the transport always gets valid JSON.
		return Response{
			StatusCode:  http.StatusInternalServerError,
			ContentType: contentTypeJSON,
			Body:        `{"error":"internal server error"}`,
		}
	}

	return Response{
		StatusCode:  status,
		ContentType: contentTypeJSON,
		Body:        string(data),
	}
}
