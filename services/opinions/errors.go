package opinions

import "net/http"

type errorKind int

const (
	kindMalformedJson errorKind = iota
	kindNotUnderstood
	kindMissingUrl
	kindUnsupportedHost
	kindUpstreamNotFound
	kindUpstreamFailure
	kindExtractionFailure
	// kindInternal is only produced at the HTTP boundary.
	kindInternal
)

// ErrorBody is the JSON body of every failed response.
type ErrorBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type errorResponse struct {
	name   string
	status int
	body   ErrorBody
}

const (
	badRequest          = "Bad request"
	internalServerError = "Internal server error"
)

var errorResponses = map[errorKind]errorResponse{
	kindMalformedJson: {
		name:   "malformed_request",
		status: http.StatusBadRequest,
		body:   ErrorBody{Title: badRequest, Description: "JSON is required."},
	},
	kindNotUnderstood: {
		name:   "malformed_request",
		status: http.StatusBadRequest,
		body:   ErrorBody{Title: badRequest, Description: "The request was not understood."},
	},
	kindMissingUrl: {
		name:   "missing_parameter",
		status: http.StatusBadRequest,
		body:   ErrorBody{Title: badRequest, Description: "The `url` parameter was missing from the request body."},
	},
	kindUnsupportedHost: {
		name:   "unsupported_host",
		status: http.StatusBadRequest,
		body:   ErrorBody{Title: badRequest, Description: "Only debate.org URLs are supported."},
	},
	kindUpstreamNotFound: {
		name:   "upstream_not_found",
		status: http.StatusNotFound,
		body:   ErrorBody{Title: "Not Found", Description: "The opinion page does not exist."},
	},
	kindUpstreamFailure: {
		name:   "upstream_failure",
		status: http.StatusInternalServerError,
		body:   ErrorBody{Title: internalServerError, Description: "The opinion could not be retrieved."},
	},
	kindExtractionFailure: {
		name:   "extraction_failure",
		status: http.StatusInternalServerError,
		body:   ErrorBody{Title: internalServerError, Description: "The opinion could not be parsed."},
	},
	kindInternal: {
		name:   "internal",
		status: http.StatusInternalServerError,
		body:   ErrorBody{Title: internalServerError, Description: "An unexpected error occurred."},
	},
}

func (k errorKind) response() errorResponse {
	res, ok := errorResponses[k]
	if !ok {
		return errorResponses[kindInternal]
	}
	return res
}
