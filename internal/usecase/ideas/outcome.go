package ideas

// SourceID identifies one configured external content source.
// The set of sources queried per request is fixed configuration, never
// user input.
type SourceID string

// Item is a single piece of content returned by a source. The engine
// treats it as an opaque payload; only the clients know how to build one.
type Item struct {
	Score int    `json:"score"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// FailureKind classifies why a source produced no items.
type FailureKind string

const (
	FailureTimeout     FailureKind = "timeout"
	FailureUnavailable FailureKind = "unavailable"
	FailureMalformed   FailureKind = "malformed_response"
)

// Failure describes one source's classified error.
type Failure struct {
	Kind   FailureKind `json:"kind"`
	Detail string      `json:"detail"`
}

// Outcome is the per-source result of an aggregation attempt: exactly one
// of Items or Failure is populated.
type Outcome struct {
	SourceID SourceID `json:"source"`
	Items    []Item   `json:"items,omitempty"`
	Failure  *Failure `json:"failure,omitempty"`
}

// OK reports whether the source contributed items.
func (o Outcome) OK() bool { return o.Failure == nil }

// Result holds one outcome per requested source, in the order the sources
// were requested. Rendering the result is deterministic for a fixed input
// regardless of which source answered first.
type Result struct {
	outcomes []Outcome
}

// Outcomes returns the per-source outcomes in request order.
func (r *Result) Outcomes() []Outcome { return r.outcomes }

// Get returns the outcome for a given source id.
func (r *Result) Get(id SourceID) (Outcome, bool) {
	for _, o := range r.outcomes {
		if o.SourceID == id {
			return o, true
		}
	}
	return Outcome{}, false
}
