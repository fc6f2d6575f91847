/*Package nciplot renders the results of a non-covalent interaction
search as plots, using gonum/plot.*/
package nciplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"gonci/nci"
)

//Scatter writes a distance-versus-angle scatter plot of the given
//records to filename, one series per interaction kind. The format is
//taken from the filename extension (.png, .svg, .pdf...). Records
//without an angle (steric clashes) are drawn at zero degrees.
func Scatter(records []*nci.Record, title, filename string) error {
	if len(records) == 0 {
		return fmt.Errorf("nciplot: no records to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance (A)"
	p.Y.Label.Text = "Angle (deg)"
	p.Add(plotter.NewGrid())

	//group the records by kind, keeping first-seen kind order so the
	//legend is stable
	var kinds []nci.Kind
	byKind := make(map[nci.Kind]plotter.XYs)
	for _, r := range records {
		if _, ok := byKind[r.Kind]; !ok {
			kinds = append(kinds, r.Kind)
		}
		y := 0.0
		if r.HasAngle {
			y = r.Angle
		}
		byKind[r.Kind] = append(byKind[r.Kind], plotter.XY{X: r.Distance, Y: y})
	}
	for i, kind := range kinds {
		s, err := plotter.NewScatter(byKind[kind])
		if err != nil {
			return fmt.Errorf("nciplot: %w", err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(string(kind), s)
	}
	p.Legend.Top = true
	return p.Save(14*vg.Centimeter, 12*vg.Centimeter, filename)
}
