// Package ideas provides the HTTP handler for the idea aggregation
// endpoint.
package ideas

import (
	"bytes"
	"encoding/json"
	"net/http"

	"recipe-catalog/internal/handler/http/respond"
	"recipe-catalog/internal/usecase/ideas"
)

// Handler serves GET /ideas. The endpoint always answers 200 when the
// service is configured; individual source failures travel inside the body.
type Handler struct{ Svc *ideas.Service }

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Aggregate(r.Context())
	if err != nil {
		// Only configuration errors reach here; source failures never do.
		respond.FromError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, orderedOutcomes(result.Outcomes()))
}

// orderedOutcomes marshals to a JSON object whose keys appear in the
// configured source order. encoding/json sorts map keys alphabetically,
// which would destroy the ordering the aggregation guarantees.
type orderedOutcomes []ideas.Outcome

func (o orderedOutcomes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, out := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(string(out.SourceID))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var body []byte
		if out.OK() {
			body, err = json.Marshal(struct {
				Items []ideas.Item `json:"items"`
			}{out.Items})
		} else {
			body, err = json.Marshal(struct {
				Failure *ideas.Failure `json:"failure"`
			}{out.Failure})
		}
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Register wires the ideas endpoint onto the mux.
func Register(mux *http.ServeMux, svc *ideas.Service) {
	mux.Handle("GET    /ideas", Handler{Svc: svc})
}
