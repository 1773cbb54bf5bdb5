package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	// Headers overrides the default application/json content type, used by
	// the spreadsheet download.
	Headers http.Header
}

type ErrorResponse struct {
	Error string `json:"error"`
}
