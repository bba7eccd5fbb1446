// Package export renders a solved or partially solved WFC board to
// external formats: an SVG or PNG color grid for quick visual inspection,
// plain JSON for interchange, and the Tiled Map Editor's TMJ format for
// consumption by map editors and game engines.
package export
