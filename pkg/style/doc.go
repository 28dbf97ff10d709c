// Package style resolves presentation parameters - colors, colormaps,
// marker shapes, line styles, and fonts - into concrete values the plotting
// surface can consume.
//
// Color specifications accept matplotlib-style single-letter shorthands
// ("r", "k"), a small set of CSS color names, and hex strings ("#1f77b4").
// Numeric node-color arrays are mapped through a [Colormap] with optional
// vmin/vmax scaling.
//
// The package performs pass-through configuration only: it validates and
// translates, it never decides how anything is drawn.
package style
