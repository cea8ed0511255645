package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gorcw/internal/envelope"
	"github.com/cpmech/gosl/chk"
)

const wallYAML = `
geometry:
  name: M2
  stem_top_width: 0.25
  stem_bottom_width: 0.30
  footing_thickness: 0.35
  toe_length: 0.5
  heel_length: 1.5
concrete: C30/37
steel: B500B
cover: 0.035
reinforcement:
  - {position: 1, diam: 0.012, spacing: 0.15}
  - {position: 3, diam: 0.010, spacing: 0.2}
uls:
  table:
    y: [0, 1, 2, 3]
    md: [0, 10000, 40000, 90000]
    vd: [0, 15000, 35000, 60000]
    md_footing: 80000
    vd_footing: 50000
sls_factor: 0.7
`

const wallJSON = `{
  "geometry": {"name": "M3", "stem_height": 2, "stem_top_width": 0.2,
    "stem_bottom_width": 0.25, "footing_thickness": 0.3},
  "uls": {"table": {"y": [0, 2], "md": [0, 50000], "vd": [0, 40000]}},
  "sls": {"table": {"y": [0, 2], "md": [0, 30000], "vd": [0, 25000]}}
}`

func writeFile(tst *testing.T, name, content string) string {
	path := filepath.Join(tst.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatal(err)
	}
	return path
}

func Test_config01(tst *testing.T) {

	chk.PrintTitle("config01. yaml wall file")

	wf, err := Load(writeFile(tst, "m2.yaml", wallYAML))
	if err != nil {
		tst.Fatal(err)
	}
	w, err := wf.Build()
	if err != nil {
		tst.Fatal(err)
	}
	w.Logf = func(string, ...interface{}) {}

	chk.String(tst, w.Name(), "M2")
	chk.String(tst, w.Phase().String(), "geometry+envelopes")
	chk.String(tst, w.Concrete.Name, "C30/37")
	chk.Float64(tst, "stem height", 1e-15, w.Geometry.StemHeight, 3)
	chk.Float64(tst, "cover      ", 1e-15, w.Reinforcement.Cover, 0.035)

	f1, _ := w.Reinforcement.Armature(1)
	chk.Float64(tst, "diam 1", 1e-15, f1.Diam, 12e-3)
	f3, _ := w.Reinforcement.Armature(3)
	chk.Float64(tst, "spacing 3", 1e-15, f3.Spacing, 0.2)
	f4, _ := w.Reinforcement.Armature(4)
	chk.Float64(tst, "diam 4", 1e-15, f4.Diam, 8e-3)

	chk.Array(tst, "SLS Md", 1e-9, w.SLS().MdMax, []float64{0, 7000, 28000, 63000})
	chk.Float64(tst, "SLS footing", 1e-9, w.SLS().MdFooting, 56000)
	chk.Array(tst, "ULS Md", 1e-9, w.ULS().MdMax, []float64{0, 10000, 40000, 90000})

	if _, err := w.Check(); err != nil {
		tst.Errorf("check failed: %v", err)
	}
}

func Test_config02(tst *testing.T) {

	chk.PrintTitle("config02. json wall file")

	wf, err := Load(writeFile(tst, "m3.json", wallJSON))
	if err != nil {
		tst.Fatal(err)
	}
	w, err := wf.Build()
	if err != nil {
		tst.Fatal(err)
	}
	chk.String(tst, w.Concrete.Name, "C25/30")
	chk.String(tst, w.Reinforcement.Steel.Name, "B500B")
	chk.Float64(tst, "cover", 1e-15, w.Reinforcement.Cover, 0.04)
	chk.Array(tst, "SLS Vd", 1e-15, w.SLS().VdMax, []float64{0, 25000})
	chk.Int(tst, "warnings", len(w.Warnings()), 0)
}

func Test_config03(tst *testing.T) {

	chk.PrintTitle("config03. envelope from a spreadsheet and characteristic loads")

	dir := tst.TempDir()
	e, err := envelope.New([]float64{0, 1.5, 3}, []float64{0, 20e3, 90e3}, []float64{0, 25e3, 60e3}, 80e3, 50e3)
	if err != nil {
		tst.Fatal(err)
	}
	if err := e.SaveXLSX(filepath.Join(dir, "uls.xlsx")); err != nil {
		tst.Fatal(err)
	}
	content := `
geometry: {name: M4, stem_top_width: 0.25, stem_bottom_width: 0.3, footing_thickness: 0.35}
uls: {xlsx: uls.xlsx}
characteristic: {dead: 0, earth: 40000, surcharge: 10000}
`
	path := filepath.Join(dir, "m4.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatal(err)
	}
	wf, err := Load(path)
	if err != nil {
		tst.Fatal(err)
	}
	w, err := wf.Build()
	if err != nil {
		tst.Fatal(err)
	}

	// ULS 1.35·40 + 1.5·10 = 69, SLS 40 + 0.3·10 = 43
	chk.Float64(tst, "SLS footing", 1e-9, w.SLS().MdFooting, 80e3*43.0/69.0)
	chk.Array(tst, "ULS y", 1e-15, w.ULS().Y, []float64{0, 1.5, 3})
}

func Test_config04(tst *testing.T) {

	chk.PrintTitle("config04. invalid wall files")

	cases := []struct {
		name, file, content string
	}{
		{"unknown format", "w.toml", "name = 'x'"},
		{"no name", "w.yaml", "geometry: {stem_top_width: 0.2, stem_bottom_width: 0.2, footing_thickness: 0.3}\nsls_factor: 0.7\nuls: {xlsx: a.xlsx}"},
		{"no ULS", "w.yaml", "geometry: {name: A, stem_top_width: 0.2, stem_bottom_width: 0.2, footing_thickness: 0.3}\nsls_factor: 0.7"},
		{"no SLS", "w.yaml", "geometry: {name: A, stem_top_width: 0.2, stem_bottom_width: 0.2, footing_thickness: 0.3}\nuls: {xlsx: a.xlsx}"},
		{"bad json", "w.json", "{"},
	}
	for _, c := range cases {
		tst.Run(c.name, func(tst *testing.T) {
			if _, err := Load(writeFile(tst, c.file, c.content)); err == nil {
				tst.Errorf("expected an error")
			}
		})
	}

	wf, err := Load(writeFile(tst, "bad.yaml", strings.Replace(wallYAML, "steel: B500B", "steel: B700", 1)))
	if err != nil {
		tst.Fatal(err)
	}
	if _, err := wf.Build(); err == nil {
		tst.Errorf("unknown steel grade should be rejected")
	}
}

func Test_config05(tst *testing.T) {

	chk.PrintTitle("config05. environment")

	for _, key := range []string{EnvOutputDir, EnvVerbose} {
		tst.Setenv(key, "")
		os.Unsetenv(key)
	}

	env, err := Env(filepath.Join(tst.TempDir(), "missing.env"))
	if err != nil {
		tst.Fatal(err)
	}
	chk.String(tst, env.OutputDir, ".")
	if env.Verbose {
		tst.Errorf("verbose by default")
	}

	env, err = Env(writeFile(tst, ".env", "GORCW_OUTPUT_DIR=reports\nGORCW_VERBOSE=true\n"))
	if err != nil {
		tst.Fatal(err)
	}
	chk.String(tst, env.OutputDir, "reports")
	if !env.Verbose {
		tst.Errorf("verbose expected")
	}

	tst.Setenv(EnvVerbose, "maybe")
	if _, err := Env(filepath.Join(tst.TempDir(), "missing.env")); err == nil {
		tst.Errorf("invalid boolean should be rejected")
	}
}
