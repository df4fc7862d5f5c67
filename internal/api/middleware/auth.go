package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/viamente/booking-service/internal/api/handlers"
)

const staffIDHeader = "X-Staff-ID"

const msgMissingStaffID = "cabeçalho X-Staff-ID ausente ou inválido"

type staffIDContextKey struct{}

// Auth requires a numeric X-Staff-ID header on every request. The
// gateway in front of the service authenticates staff members and
// forwards their id, here it is only read and propagated.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID, err := strconv.ParseInt(r.Header.Get(staffIDHeader), 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDContextKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID returns the staff id placed into the context by Auth.
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDContextKey{}).(int64)
	return staffID, ok
}
