package handlers

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes caps request bodies. Order items may embed data: URL images.
const maxBodyBytes = 10 << 20

// decodeJSON reads the request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// errorDetail returns the technical cause of a failure for the client, or
// nil when details are withheld.
func errorDetail(exposeDetails bool, err error) any {
	if !exposeDetails || err == nil {
		return nil
	}
	return err.Error()
}
