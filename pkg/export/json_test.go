package export

import (
	"encoding/json"
	"testing"
)

func TestExportJSON_RoundTrips(t *testing.T) {
	result := sampleResult()
	data, err := ExportJSON(result)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Width != result.Width || decoded.Height != result.Height {
		t.Fatalf("dimensions = %dx%d, want %dx%d", decoded.Width, decoded.Height, result.Width, result.Height)
	}
	if len(decoded.Placements) != len(result.Placements) {
		t.Fatalf("len(Placements) = %d, want %d", len(decoded.Placements), len(result.Placements))
	}
}

func TestExportJSONCompact_IsValidJSON(t *testing.T) {
	data, err := ExportJSONCompact(sampleResult())
	if err != nil {
		t.Fatalf("ExportJSONCompact: %v", err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("compact output is not valid JSON: %v", err)
	}
}
