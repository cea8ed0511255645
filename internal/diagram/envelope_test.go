package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func sampleData() EnvelopeDiagramData {
	return EnvelopeDiagramData{
		Title:  "test wall",
		Height: []float64{3, 2, 1, 0},
		Moment: []float64{0, 2.5, 20, 67.5},
		Shear:  []float64{0, 5, 20, 45},
	}
}

func Test_diagram01(tst *testing.T) {

	chk.PrintTitle("diagram01. envelope graphics")

	dir := tst.TempDir()
	for _, name := range []string{"wall.eps", "wall.pdf", "wall.png"} {
		fn := filepath.Join(dir, "out", name)
		if err := ExportEnvelope(sampleData(), fn); err != nil {
			tst.Fatalf("%s: %v", name, err)
		}
		info, err := os.Stat(fn)
		if err != nil {
			tst.Fatal(err)
		}
		if info.Size() == 0 {
			tst.Errorf("%s is empty", name)
		}
	}

	if err := ExportEnvelope(EnvelopeDiagramData{}, filepath.Join(dir, "empty.png")); err == nil {
		tst.Errorf("empty envelope must be rejected")
	}
}

func Test_diagram02(tst *testing.T) {

	chk.PrintTitle("diagram02. terminal plot")

	out, err := DrawASCIIEnvelope(sampleData(), 6)
	if err != nil {
		tst.Fatal(err)
	}
	if !strings.Contains(out, "Md (kN m/m)") || !strings.Contains(out, "Vd (kN/m)") {
		tst.Errorf("captions missing:\n%s", out)
	}

	bad := sampleData()
	bad.Shear = bad.Shear[:2]
	if _, err = DrawASCIIEnvelope(bad, 6); err == nil {
		tst.Errorf("mismatched curves must be rejected")
	}
}
