package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

type Controller interface {
	Handle(presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

// AdaptRoute bridges a controller to net/http. Responses default to JSON;
// controllers that stream other content set their own headers.
func AdaptRoute(controller Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpRequest := presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		httpResponse := controller.Handle(httpRequest)
		defer httpResponse.Body.Close()

		if len(httpResponse.Headers) > 0 {
			for key, values := range httpResponse.Headers {
				for _, value := range values {
					w.Header().Add(key, value)
				}
			}
		} else {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(httpResponse.StatusCode)
		io.Copy(w, httpResponse.Body)
	}
}
