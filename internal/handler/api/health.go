package api

import (
	"database/sql"
	"net/http"
)

type healthStatus struct {
	Status string `json:"status"`
}

func HealthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			WriteError(w, http.StatusServiceUnavailable, "database unreachable", err)
			return
		}
		RespondJSON(w, http.StatusOK, healthStatus{Status: "ok"})
	}
}
