package export

import (
	"testing"

	"github.com/dshills/wavecollapse/pkg/position"
)

func TestExportTMJ_GIDsMatchTileOrder(t *testing.T) {
	result := sampleResult()
	tileNames := []string{"Water", "Sand", "Forest"}

	tmjMap, err := ExportTMJ(result, tileNames, false)
	if err != nil {
		t.Fatalf("ExportTMJ: %v", err)
	}
	if len(tmjMap.Layers) != 1 {
		t.Fatalf("len(Layers) = %d, want 1", len(tmjMap.Layers))
	}
	if len(tmjMap.Tilesets) != 1 || tmjMap.Tilesets[0].TileCount != len(tileNames) {
		t.Fatalf("tileset = %+v, want TileCount %d", tmjMap.Tilesets, len(tileNames))
	}

	data, ok := tmjMap.Layers[0].Data.([]uint32)
	if !ok {
		t.Fatalf("layer data type = %T, want []uint32", tmjMap.Layers[0].Data)
	}

	waterGID := CalculateGID(tmjMap.Tilesets[0].FirstGID, 0)
	got := data[position.Position{X: 0, Y: 0}.Index(result.Width)]
	if got != waterGID {
		t.Errorf("GID at (0,0) = %d, want %d (Water)", got, waterGID)
	}
}

func TestExportTMJ_UnknownLabelErrors(t *testing.T) {
	result := sampleResult()
	_, err := ExportTMJ(result, []string{"Water"}, false)
	if err == nil {
		t.Error("expected an error for a placement label missing from tileNames")
	}
}

func TestExportTMJ_CompressedLayerDecodesToBase64Gzip(t *testing.T) {
	result := sampleResult()
	tmjMap, err := ExportTMJ(result, []string{"Water", "Sand", "Forest"}, true)
	if err != nil {
		t.Fatalf("ExportTMJ: %v", err)
	}
	layer := tmjMap.Layers[0]
	if layer.Encoding != "base64" || layer.Compression != "gzip" {
		t.Fatalf("layer encoding/compression = %s/%s, want base64/gzip", layer.Encoding, layer.Compression)
	}
	if _, ok := layer.Data.(string); !ok {
		t.Fatalf("compressed layer data type = %T, want string", layer.Data)
	}
}

func TestMarshalTMJ_ProducesValidJSON(t *testing.T) {
	tmjMap, err := ExportTMJ(sampleResult(), []string{"Water", "Sand", "Forest"}, false)
	if err != nil {
		t.Fatalf("ExportTMJ: %v", err)
	}
	data, err := MarshalTMJ(tmjMap)
	if err != nil {
		t.Fatalf("MarshalTMJ: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty TMJ JSON output")
	}
}

func TestParseGID_RoundTripsWithCalculateGID(t *testing.T) {
	gid := CalculateGID(1, 5)
	id, flipH, flipV, flipD := ParseGID(gid)
	if id != 6 {
		t.Errorf("ParseGID tileID = %d, want 6", id)
	}
	if flipH || flipV || flipD {
		t.Error("expected no flip flags set")
	}
}
