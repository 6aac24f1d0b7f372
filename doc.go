// Package pitch plots sports pitches and overlays charts of event data
// on them.
//
//
// Pitches
//
// A Pitch draws the markings of a soccer pitch in the coordinate system
// of a data provider, so that positional data from that provider can be
// plotted without any conversion:
//
//      p, err := pitch.New(pitch.Options{Type: "statsbomb"})
//      plt, err := p.Draw()
//      err = p.Scatter(plt, x, y, pitch.ScatterOptions{})
//      w, h := p.FigSize(6 * vg.Inch)
//      err = plt.Save(w, h, "shots.png")
//
// The supported coordinate systems are listed in the dim subpackage,
// which also converts coordinates between providers. Pitches can be
// drawn horizontally (positive x is the direction of play) or
// vertically (play runs up the drawing), whole or halved, with padding
// around the pitch in provider units.
//
//
// Overlays
//
// The overlay methods place charts on a drawn pitch: scattered and
// rotated markers, pass lines and comets, arrows, heat maps of binned
// statistics, hexagonal bins, smoothed densities, Voronoi cells and
// convex hulls. All of them accept coordinates in the provider system
// of the pitch and reorient the data for vertical pitches themselves.
// The statistics come from the stat subpackage, the geometry from the
// geom subpackage.
//
//
// Other sports
//
// Court draws a basketball court and Field an American football
// field. They share the themes, the figure sizing and the overlay
// mechanics of the soccer pitch.
//
//
// Event data
//
// The statsbomb subpackage parses the public StatsBomb event data
// feeds into columnar tables whose location columns feed directly into
// the overlay methods.
package pitch
