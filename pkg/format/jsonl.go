package format

import (
	"encoding/json"
	"io"

	"pkg.jsn.cam/rostergen/pkg/roster"
)

// JSONLinesEncoder writes one JSON object per line.
type JSONLinesEncoder struct {
	enc *json.Encoder
}

func (j *JSONLinesEncoder) Open(w io.Writer) error {
	j.enc = json.NewEncoder(w)
	return nil
}

func (j *JSONLinesEncoder) Write(e roster.Employee) error {
	return j.enc.Encode(e)
}

func (j *JSONLinesEncoder) Close() error {
	return nil
}

func (j *JSONLinesEncoder) Description() string {
	return "JSON lines: {\"id\":1,\"firstName\":...,\"managerId\":...}"
}
