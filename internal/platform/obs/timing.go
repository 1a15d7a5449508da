// Package obs carries request-scoped observability helpers shared by the
// HTTP layer and the adapters underneath it.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey is the context key under which the request-ID middleware
// stores the correlation ID.
const RequestIDKey ctxKey = "req_id"

// Time logs the duration of an operation, tagged with the request ID so a
// slow quote insert or geocode call can be tied back to its request line.
// Use with a named error return:
//
//	defer obs.Time(ctx, "geo.ors.Lookup")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
