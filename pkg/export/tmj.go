package export

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// TMJ Format Types
// Based on the Tiled Map Editor JSON specification (TMJ 1.10).
// Reference: https://doc.mapeditor.org/en/stable/reference/json-map-format/

// TMJMap represents the root TMJ map structure.
type TMJMap struct {
	Type             string        `json:"type"`
	Version          string        `json:"version"`
	TiledVersion     string        `json:"tiledversion"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	TileWidth        int           `json:"tilewidth"`
	TileHeight       int           `json:"tileheight"`
	Orientation      string        `json:"orientation"`
	RenderOrder      string        `json:"renderorder"`
	Infinite         bool          `json:"infinite"`
	NextLayerID      int           `json:"nextlayerid"`
	NextObjectID     int           `json:"nextobjectid"`
	Class            string        `json:"class,omitempty"`
	CompressionLevel int           `json:"compressionlevel"`
	Layers           []TMJLayer    `json:"layers"`
	Tilesets         []TMJTileset  `json:"tilesets"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJLayer represents a single tile layer.
type TMJLayer struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Type        string        `json:"type"` // always "tilelayer" here
	Visible     bool          `json:"visible"`
	Opacity     float64       `json:"opacity"`
	X           int           `json:"x"`
	Y           int           `json:"y"`
	Width       int           `json:"width,omitempty"`
	Height      int           `json:"height,omitempty"`
	Class       string        `json:"class,omitempty"`
	Data        interface{}   `json:"data,omitempty"`        // []uint32 or base64 string
	Encoding    string        `json:"encoding,omitempty"`    // "csv" or "base64"
	Compression string        `json:"compression,omitempty"` // "" or "gzip"
	Properties  []TMJProperty `json:"properties,omitempty"`
}

// TMJTileset references a collection of tiles. One tileset is generated
// per export, with one local tile ID per entry in the solver's tile list.
type TMJTileset struct {
	FirstGID   uint32        `json:"firstgid"`
	Name       string        `json:"name,omitempty"`
	TileWidth  int           `json:"tilewidth,omitempty"`
	TileHeight int           `json:"tileheight,omitempty"`
	TileCount  int           `json:"tilecount,omitempty"`
	Columns    int           `json:"columns,omitempty"`
	Tiles      []TMJTileDef  `json:"tiles,omitempty"`
	Properties []TMJProperty `json:"properties,omitempty"`
}

// TMJTileDef names one local tile ID within a tileset, carrying the
// solver's tile label forward so the exported map is self-describing
// without an accompanying image atlas.
type TMJTileDef struct {
	ID         int           `json:"id"`
	Type       string        `json:"type,omitempty"`
	Properties []TMJProperty `json:"properties,omitempty"`
}

// TMJProperty represents a custom property.
type TMJProperty struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// GID flags: the top three bits of a tile GID carry flip state. The
// solver never produces flipped tiles (no rotation/reflection), but the
// constants are kept so a consumer parsing GIDs from this exporter's
// output, or from a hand-edited TMJ file, can mask them out correctly.
const (
	FlippedHorizontallyFlag = 0x80000000
	FlippedVerticallyFlag   = 0x40000000
	FlippedDiagonallyFlag   = 0x20000000
	TileIDMask              = 0x1FFFFFFF
)

// NewTMJMap creates an empty TMJ map with default settings.
func NewTMJMap(width, height, tileWidth, tileHeight int) *TMJMap {
	return &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            width,
		Height:           height,
		TileWidth:        tileWidth,
		TileHeight:       tileHeight,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		Infinite:         false,
		NextLayerID:      1,
		NextObjectID:     1,
		CompressionLevel: -1,
		Layers:           []TMJLayer{},
		Tilesets:         []TMJTileset{},
	}
}

// AddTileLayer adds a tile layer holding the given GID data (row-major,
// width*height entries) to the map.
func (m *TMJMap) AddTileLayer(name string, data []uint32) *TMJLayer {
	layer := TMJLayer{
		ID:       m.NextLayerID,
		Name:     name,
		Type:     "tilelayer",
		Visible:  true,
		Opacity:  1.0,
		Width:    m.Width,
		Height:   m.Height,
		Data:     data,
		Encoding: "csv",
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddTileset registers a tileset with one local tile ID per name in
// tileNames, in order, and returns it.
func (m *TMJMap) AddTileset(name string, tileWidth, tileHeight int, tileNames []string) *TMJTileset {
	firstGID := uint32(1)
	if len(m.Tilesets) > 0 {
		last := m.Tilesets[len(m.Tilesets)-1]
		firstGID = last.FirstGID + uint32(last.TileCount)
	}

	tiles := make([]TMJTileDef, len(tileNames))
	for i, n := range tileNames {
		tiles[i] = TMJTileDef{ID: i, Type: n}
	}

	tileset := TMJTileset{
		FirstGID:   firstGID,
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		TileCount:  len(tileNames),
		Columns:    len(tileNames),
		Tiles:      tiles,
	}
	m.Tilesets = append(m.Tilesets, tileset)
	return &m.Tilesets[len(m.Tilesets)-1]
}

// CompressLayerData compresses a tile layer's GID data with gzip and
// encodes it as base64, matching Tiled's "base64"+"gzip" encoding.
func (l *TMJLayer) CompressLayerData() error {
	if l.Type != "tilelayer" {
		return fmt.Errorf("export: cannot compress a non-tile layer")
	}
	data, ok := l.Data.([]uint32)
	if !ok {
		return fmt.Errorf("export: layer data is not []uint32")
	}

	buf := new(bytes.Buffer)
	for _, gid := range data {
		buf.WriteByte(byte(gid))
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid >> 16))
		buf.WriteByte(byte(gid >> 24))
	}

	var compressed bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressed)
	if _, err := gzipWriter.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return err
	}

	l.Data = base64.StdEncoding.EncodeToString(compressed.Bytes())
	l.Encoding = "base64"
	l.Compression = "gzip"
	return nil
}

// CalculateGID converts a tileset-local tile ID to a global ID.
func CalculateGID(tilesetFirstGID uint32, localTileID int) uint32 {
	return tilesetFirstGID + uint32(localTileID)
}

// ParseGID extracts the tile ID and flip flags from a global ID.
func ParseGID(gid uint32) (tileID uint32, flipH, flipV, flipD bool) {
	flipH = (gid & FlippedHorizontallyFlag) != 0
	flipV = (gid & FlippedVerticallyFlag) != 0
	flipD = (gid & FlippedDiagonallyFlag) != 0
	tileID = gid & TileIDMask
	return
}

// ExportTMJ converts a solved Result to a TMJ map. tileNames must list
// every distinct tile label the result can contain, in the order the
// caller wants them registered as tileset-local IDs; unresolved positions
// (absent from result.Placements) get GID 0, Tiled's "empty" sentinel.
// When compress is true, the tile layer's data is gzip+base64 encoded.
func ExportTMJ(result Result, tileNames []string, compress bool) (*TMJMap, error) {
	if result.Width <= 0 || result.Height <= 0 {
		return nil, fmt.Errorf("export: width and height must be positive, got %dx%d", result.Width, result.Height)
	}

	localID := make(map[string]int, len(tileNames))
	for i, n := range tileNames {
		localID[n] = i
	}

	tmjMap := NewTMJMap(result.Width, result.Height, 16, 16)
	tmjMap.Class = "wfc"
	tileset := tmjMap.AddTileset("tiles", 16, 16, tileNames)

	data := make([]uint32, result.Width*result.Height)
	for _, p := range result.Placements {
		if !p.Position.InBounds(result.Width, result.Height) {
			continue
		}
		id, ok := localID[p.Label]
		if !ok {
			return nil, fmt.Errorf("export: placement label %q not present in tileNames", p.Label)
		}
		data[p.Position.Index(result.Width)] = CalculateGID(tileset.FirstGID, id)
	}

	layer := tmjMap.AddTileLayer("tiles", data)
	if compress {
		if err := layer.CompressLayerData(); err != nil {
			return nil, fmt.Errorf("export: compressing tile layer: %w", err)
		}
	}

	tmjMap.Properties = append(tmjMap.Properties,
		TMJProperty{Name: "generator", Type: "string", Value: "wavecollapse"},
	)

	return tmjMap, nil
}

// MarshalTMJ serializes a TMJ map to indented JSON.
func MarshalTMJ(tmjMap *TMJMap) ([]byte, error) {
	return json.MarshalIndent(tmjMap, "", "  ")
}

// MarshalTMJCompact serializes a TMJ map to compact JSON.
func MarshalTMJCompact(tmjMap *TMJMap) ([]byte, error) {
	return json.Marshal(tmjMap)
}

// SaveTMJToFile writes an indented TMJ map to filepath with 0644
// permissions.
func SaveTMJToFile(tmjMap *TMJMap, filepath string) error {
	data, err := MarshalTMJ(tmjMap)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0o644)
}

// EncodeTMJ writes an indented TMJ map to w.
func EncodeTMJ(tmjMap *TMJMap, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tmjMap)
}

// ExportResultToTMJ converts a Result directly to marshaled TMJ JSON
// bytes.
func ExportResultToTMJ(result Result, tileNames []string, compress bool) ([]byte, error) {
	tmjMap, err := ExportTMJ(result, tileNames, compress)
	if err != nil {
		return nil, err
	}
	return MarshalTMJ(tmjMap)
}

// SaveResultToTMJFile exports a Result directly to a TMJ file.
func SaveResultToTMJFile(result Result, tileNames []string, filepath string, compress bool) error {
	tmjMap, err := ExportTMJ(result, tileNames, compress)
	if err != nil {
		return err
	}
	return SaveTMJToFile(tmjMap, filepath)
}
