// internal/render/svg.go
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/xkilldash9x/vector2/internal/config"
	"github.com/xkilldash9x/vector2/pkg/vector"
)

// Arrow is one vector drawn from From to From+Vector.
type Arrow struct {
	From   vector.Vector2
	Vector vector.Vector2
	// Label defaults to the vector's String form.
	Label string
	// Color defaults to the next palette entry.
	Color string
}

// Renderer draws arrows onto an SVG canvas whose origin is the center, with
// the y axis pointing up.
type Renderer struct {
	cfg config.RenderConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(cfg config.RenderConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Document builds the SVG document for arrows.
func (r *Renderer) Document(arrows []Arrow) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	w, h := float64(r.cfg.Width), float64(r.cfg.Height)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", strconv.Itoa(r.cfg.Width))
	svg.CreateAttr("height", strconv.Itoa(r.cfg.Height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", r.cfg.Width, r.cfg.Height))

	if r.cfg.Background != "" {
		bg := svg.CreateElement("rect")
		bg.CreateAttr("width", "100%")
		bg.CreateAttr("height", "100%")
		bg.CreateAttr("fill", r.cfg.Background)
	}

	axes := svg.CreateElement("g")
	axes.CreateAttr("class", "axes")
	axes.CreateAttr("stroke", "#999")
	axes.CreateAttr("stroke-width", "1")
	line(axes, 0, h/2, w, h/2)
	line(axes, w/2, 0, w/2, h)

	for i, a := range arrows {
		if err := r.arrow(svg, i, a); err != nil {
			return nil, fmt.Errorf("arrow %d: %w", i, err)
		}
	}

	doc.Indent(2)
	return doc, nil
}

// Write renders arrows to w.
func (r *Renderer) Write(w io.Writer, arrows []Arrow) error {
	doc, err := r.Document(arrows)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}

func (r *Renderer) arrow(parent *etree.Element, i int, a Arrow) error {
	color := a.Color
	if color == "" && len(r.cfg.Palette) > 0 {
		color = r.cfg.Palette[i%len(r.cfg.Palette)]
	}
	label := a.Label
	if label == "" {
		label = a.Vector.String()
	}

	g := parent.CreateElement("g")
	g.CreateAttr("class", "vector")
	g.CreateAttr("stroke", color)
	g.CreateAttr("fill", color)
	g.CreateAttr("stroke-width", num(r.cfg.StrokeWidth))

	tail := r.toScreen(a.From)
	tip := r.toScreen(a.From.Add(a.Vector))

	if a.Vector.Length() == 0 {
		dot := g.CreateElement("circle")
		dot.CreateAttr("cx", num(tail.X))
		dot.CreateAttr("cy", num(tail.Y))
		dot.CreateAttr("r", num(math.Max(r.cfg.StrokeWidth, 1)))
	} else {
		line(g, tail.X, tail.Y, tip.X, tip.Y)
		if r.cfg.HeadLength > 0 {
			head, err := r.head(a.Vector)
			if err != nil {
				return err
			}
			points := make([]string, 0, 3)
			for _, p := range []vector.Vector2{tip, tip.Add(head[0]), tip.Add(head[1])} {
				points = append(points, num(p.X)+","+num(p.Y))
			}
			poly := g.CreateElement("polygon")
			poly.CreateAttr("points", strings.Join(points, " "))
		}
	}

	text := g.CreateElement("text")
	text.CreateAttr("x", num(tip.X+4))
	text.CreateAttr("y", num(tip.Y-4))
	text.CreateAttr("stroke", "none")
	text.CreateAttr("font-size", "12")
	text.SetText(label)
	return nil
}

// head returns the two barb offsets of an arrow head in screen space: the
// reversed direction of v, at head length, turned by plus and minus the head
// angle.
func (r *Renderer) head(v vector.Vector2) ([2]vector.Vector2, error) {
	// Screen space flips the y axis.
	dir := vector.New(v.X, -v.Y).Neg()
	back, err := dir.ScaleTo(r.cfg.HeadLength)
	if err != nil {
		return [2]vector.Vector2{}, err
	}
	return [2]vector.Vector2{back.Rotate(r.cfg.HeadAngle), back.Rotate(-r.cfg.HeadAngle)}, nil
}

// toScreen maps a point in vector space to canvas pixels.
func (r *Renderer) toScreen(p vector.Vector2) vector.Vector2 {
	return vector.New(
		float64(r.cfg.Width)/2+p.X*r.cfg.Scale,
		float64(r.cfg.Height)/2-p.Y*r.cfg.Scale,
	)
}

func line(parent *etree.Element, x1, y1, x2, y2 float64) *etree.Element {
	l := parent.CreateElement("line")
	l.CreateAttr("x1", num(x1))
	l.CreateAttr("y1", num(y1))
	l.CreateAttr("x2", num(x2))
	l.CreateAttr("y2", num(y2))
	return l
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
