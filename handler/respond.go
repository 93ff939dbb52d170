package handler

import (
	"net/http"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
)

func respondWithCode(marshaler marshal.Marshaler, rw http.ResponseWriter, statusCode int, body interface{}) int {
	bytes, err := marshaler.Marshal(body)
	if err != nil {
		statusCode = http.StatusInternalServerError
		bytes = []byte(`{"error": "failed to marshal response"}`)
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusCode)
	rw.Write(bytes)
	return statusCode
}
