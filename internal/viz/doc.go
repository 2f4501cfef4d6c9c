// Package viz holds the terminal look of graphinglib: lipgloss themes for
// text, asciigraph color cycles for chart series and a few small renderers
// (gradient titles, sparklines) shared by the CLI and the explorer.
package viz
