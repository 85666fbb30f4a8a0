// Command fabz builds a printable protective guard for a handheld
// radio's antenna stub and control knobs. Parameters come from a
// preset, optionally adjusted by a Lisp script and -set overrides;
// output is an STL mesh or a DXF footprint outline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/otakup0pe/fabz/pkg/config"
	"github.com/otakup0pe/fabz/pkg/csg"
	"github.com/otakup0pe/fabz/pkg/engine"
	"github.com/otakup0pe/fabz/pkg/export"
	"github.com/otakup0pe/fabz/pkg/guard"
	"github.com/otakup0pe/fabz/pkg/kernel/sdfx"
	"github.com/otakup0pe/fabz/pkg/tessellate"
)

// multiFlag collects repeated -set name=value flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fabz: ")

	// A .env file is optional; flags beat environment values.
	_ = godotenv.Load()

	var sets multiFlag
	presetName := flag.String("preset", envOr("FABZ_PRESET", config.DefaultPreset), "parameter preset to start from")
	scriptPath := flag.String("script", "", "Lisp parameter script to apply")
	out := flag.String("o", envOr("FABZ_OUT", "guard.stl"), "output file")
	format := flag.String("format", "", "output format: stl or dxf (default from the output extension)")
	ascii := flag.Bool("ascii", false, "write ASCII STL instead of binary")
	cells := flag.Int("cells", 0, "marching cubes resolution (default from parameters)")
	listPresets := flag.Bool("presets", false, "list available presets and exit")
	listParams := flag.Bool("params", false, "list settable parameter names and exit")
	flag.Var(&sets, "set", "parameter override, name=value (repeatable)")
	flag.Parse()

	if *listPresets {
		for _, n := range config.PresetNames() {
			fmt.Println(n)
		}
		return
	}
	if *listParams {
		for _, n := range config.ParamNames() {
			fmt.Println(n)
		}
		return
	}

	params, err := config.Preset(*presetName)
	if err != nil {
		log.Fatal(err)
	}

	if *scriptPath != "" {
		source, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		p, evalErrs, err := engine.NewEngine().Evaluate(string(source), params)
		if err != nil {
			log.Fatal(err)
		}
		if len(evalErrs) > 0 {
			for _, e := range evalErrs {
				log.Printf("%s: %s", *scriptPath, e.Error())
			}
			os.Exit(1)
		}
		params = p
	}

	for _, kv := range sets {
		if err := applyOverride(&params, kv); err != nil {
			log.Fatal(err)
		}
	}

	for _, f := range config.Validate(params) {
		log.Printf("%s: %s: %s", f.Severity, f.Param, f.Message)
	}
	if err := config.Check(params); err != nil {
		os.Exit(1)
	}

	tree := guard.Assemble(params)
	for _, v := range csg.Validate(tree) {
		log.Print(v.Error())
	}
	log.Printf("assembled %s (hash %s)", tree.Name, tree.ContentHash().Short())

	switch outputFormat(*format, *out) {
	case "dxf":
		outline := guard.PlateFootprint(params)
		if err := export.WriteDXF(outline, *out); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d outline vertices)", *out, len(outline))

	case "stl":
		meshCells := params.MeshCells
		if *cells > 0 {
			meshCells = *cells
		}
		mesh, err := tessellate.Tessellate(tree, sdfx.New(), meshCells)
		if err != nil {
			log.Fatal(err)
		}
		if err := export.WriteSTL(mesh, *out, *ascii); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d triangles)", *out, mesh.TriangleCount())

	default:
		log.Fatalf("unknown output format %q, want stl or dxf", *format)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// applyOverride parses a -set name=value pair and assigns it.
func applyOverride(p *config.Params, kv string) error {
	name, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("bad -set %q, want name=value", kv)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("bad -set %q: %w", kv, err)
	}
	return p.Set(strings.TrimSpace(name), f)
}

// outputFormat picks the export format from the -format flag, falling
// back to the output file extension.
func outputFormat(format, out string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch {
	case strings.HasSuffix(strings.ToLower(out), ".dxf"):
		return "dxf"
	default:
		return "stl"
	}
}
