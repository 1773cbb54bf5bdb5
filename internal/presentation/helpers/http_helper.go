package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(strings.NewReader(`{"error":"error encoding response"}`)),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(jsonBody)),
		StatusCode: statusCode,
	}
}
