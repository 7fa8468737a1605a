package motif

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file serializes discovery output into the JSON interchange format
// used by pattern-discovery evaluation tooling: one object per TEC carrying
// the piece name, a labeled canonical pattern, and the list of its other
// occurrences. Each pattern is a point list over the first two components.

// PatternJSON is the serialized form of one pattern occurrence.
type PatternJSON struct {
	Label    string      `json:"label"`
	Source   string      `json:"source"`
	DataType string      `json:"data_type"`
	Data     [][]float64 `json:"data"`
}

// TecJSON is the serialized form of one TEC: the canonical pattern plus its
// other occurrences.
type TecJSON struct {
	Piece       string        `json:"piece"`
	Pattern     PatternJSON   `json:"pattern"`
	Occurrences []PatternJSON `json:"occurrences"`
}

// WriteTecsJSON writes the TECs to w as a JSON array. Labels are assigned
// positionally (P0, P1, ...); source names the producing algorithm or
// analyst. Each TEC is expanded so the canonical pattern comes first and the
// occurrence list holds the translated copies.
func WriteTecsJSON[P Point[P]](w io.Writer, piece, source string, tecs []Tec[P]) error {
	serialized := make([]TecJSON, 0, len(tecs))

	for i, tec := range tecs {
		label := fmt.Sprintf("P%d", i)
		expanded := tec.Expand()

		occurrences := make([]PatternJSON, 0, len(expanded)-1)
		for _, occurrence := range expanded[1:] {
			occurrences = append(occurrences, patternJSON(label, source, occurrence))
		}

		serialized = append(serialized, TecJSON{
			Piece:       piece,
			Pattern:     patternJSON(label, source, expanded[0]),
			Occurrences: occurrences,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(serialized)
}

func patternJSON[P Point[P]](label, source string, pattern Pattern[P]) PatternJSON {
	data := make([][]float64, 0, pattern.Len())
	for i := 0; i < pattern.Len(); i++ {
		x, y := planeComponents(pattern.At(i))
		data = append(data, []float64{x, y})
	}

	return PatternJSON{
		Label:    label,
		Source:   source,
		DataType: "point_set",
		Data:     data,
	}
}
