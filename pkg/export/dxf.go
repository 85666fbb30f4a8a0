package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"

	"github.com/otakup0pe/fabz/pkg/geom"
)

// footprintLayer is the DXF layer the outline is placed on.
const footprintLayer = "footprint"

// FootprintDrawing builds a DXF drawing holding the plate outline as
// one closed lightweight polyline.
func FootprintDrawing(outline geom.Polygon) (*drawing.Drawing, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("export: outline has %d vertices, want at least 3", len(outline))
	}

	d := dxf.NewDrawing()
	d.AddLayer(footprintLayer, dxf.DefaultColor, dxf.DefaultLineType, true)

	// Close the loop by repeating the first vertex.
	lwp := entity.NewLwPolyline(len(outline) + 1)
	for i, v := range outline {
		lwp.Vertices[i] = []float64{v.X, v.Y}
	}
	lwp.Vertices[len(outline)] = []float64{outline[0].X, outline[0].Y}
	d.AddEntity(lwp)

	return d, nil
}

// WriteDXF writes the plate outline to path as a DXF drawing.
func WriteDXF(outline geom.Polygon, path string) error {
	d, err := FootprintDrawing(outline)
	if err != nil {
		return err
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
