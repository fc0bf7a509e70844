package charts

import "datachat/dataset"

// Spec is a Vega-Lite style chart specification as produced by the
// model. It stays a plain map so keys the validator does not know about
// survive the round trip to the client untouched.
type Spec map[string]interface{}

// DefaultSchemaURL is the visualization grammar version specs are
// expected to declare when schema checking is on.
const DefaultSchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// Encoding returns the spec's encoding block when it is an object.
func (s Spec) Encoding() (map[string]interface{}, bool) {
	enc, ok := s["encoding"].(map[string]interface{})
	return enc, ok
}

// Decorate returns a copy of the spec with the dataset rows attached as
// inline values, so the spec renders standalone. Any data block the
// model put there is replaced; the session dataset is the single source
// of truth.
func (s Spec) Decorate(rows []dataset.Row) Spec {
	out := make(Spec, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out["data"] = map[string]interface{}{"values": rows}
	return out
}
