package geometry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func sampleWall() Cantilever {
	g := NewCantilever("test", 0.40, 0.25, 0.50)
	g.StemHeight = 3.0
	g.ToeLength = 0.60
	g.HeelLength = 1.50
	return g
}

func Test_cantilever01(tst *testing.T) {

	chk.PrintTitle("cantilever01. stem depth along the height")

	g := sampleWall()
	if err := g.Validate(); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "depth crown ", 1e-15, g.Depth(0), 0.25)
	chk.Float64(tst, "depth middle", 1e-15, g.Depth(1.5), 0.325)
	chk.Float64(tst, "depth base  ", 1e-15, g.Depth(3.0), 0.40)

	g.StemHeight = 0
	chk.Float64(tst, "depth unknown height", 1e-15, g.Depth(2), 0.25)
}

func Test_cantilever02(tst *testing.T) {

	chk.PrintTitle("cantilever02. outline area and centroid")

	g := sampleWall()
	chk.Float64(tst, "B  ", 1e-15, g.FootingWidth(), 2.5)
	chk.Float64(tst, "Htot", 1e-15, g.TotalHeight(), 3.5)

	footing := 2.5 * 0.5
	stem := (0.25 + 0.40) / 2 * 3.0
	chk.Float64(tst, "area", 1e-12, g.Area(), footing+stem)

	// rectangular stem: centroid by hand
	r := NewCantilever("rect", 1.0, 1.0, 1.0)
	r.StemHeight = 1.0
	r.HeelLength = 1.0
	c := r.Centroid()
	chk.Float64(tst, "cx", 1e-12, c.X, (2*1.0+1*0.5)/3)
	chk.Float64(tst, "cy", 1e-12, c.Y, (2*0.5+1*1.5)/3)
}

func Test_cantilever03(tst *testing.T) {

	chk.PrintTitle("cantilever03. validation and LaTeX table")

	bad := sampleWall()
	bad.FootingThickness = 0
	if err := bad.Validate(); err == nil {
		tst.Errorf("null footing must be rejected")
	}
	unnamed := sampleWall()
	unnamed.Name = ""
	if err := unnamed.Validate(); err == nil {
		tst.Errorf("unnamed wall must be rejected")
	}

	var buf bytes.Buffer
	if err := sampleWall().WriteGeometry(&buf); err != nil {
		tst.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Stem height: &  3.00 m") {
		tst.Errorf("unexpected table:\n%s", buf.String())
	}
}
