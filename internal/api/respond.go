package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// DefaultLimit is the page size used when a request does not specify one.
const DefaultLimit = 10

func RespondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondError writes the {"detail": ...} error shape existing clients
// parse for both validation failures and server faults.
func RespondError(w http.ResponseWriter, code int, detail string) {
	RespondJSON(w, code, map[string]string{"detail": detail})
}

// Pagination reads limit/offset query parameters, falling back to
// DefaultLimit and 0 for missing, unparsable, or negative values.
func Pagination(r *http.Request) (limit, offset int64) {
	limit = DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}
