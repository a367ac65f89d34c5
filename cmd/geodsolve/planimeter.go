package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/geodlab/geodesic"
	"github.com/geodlab/geodesic/geodgeom"
)

func newPlanimeterCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "planimeter [file]",
		Short: "Measure geodesic polygons",
		Long: `
Measure polygons whose edges are geodesics. Input holds one "lat lon" vertex
per line, and a blank line ends a polygon. Each polygon prints "count perimeter
area", or "count length" with --polyline. Counter-clockwise traversal gives a
positive area.

With --geojson the input is a GeoJSON geometry, Feature or FeatureCollection
and each geometry prints "length perimeter area".
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanimeter(cmd, sc, args)
		},
	}
	flags := sc.Cmd.Flags()
	flags.Bool("polyline", false, "Treat the vertices as a polyline and report only its length.")
	flags.Bool("reverse", false, "Count clockwise traversal as a positive area.")
	flags.Bool("sign", true, "Report a signed area instead of the area of the rest of the ellipsoid "+
		"for polygons traversed in the wrong direction.")
	flags.Bool("geojson", false, "Read GeoJSON instead of lat lon lines.")
	return sc
}

func runPlanimeter(cmd *cobra.Command, sc *subCommand, args []string) error {
	e, err := ellipsoidFromConf(sc.Conf)
	if err != nil {
		return err
	}
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		fd, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer fd.Close()
		in = fd
	}
	f := newFormatter(sc.Conf)
	out := cmd.OutOrStdout()
	if sc.Conf.GetBool("geojson") {
		return measureGeoJSON(e, f, in, out)
	}
	opt := polygonOptions{
		polyline: sc.Conf.GetBool("polyline"),
		reverse:  sc.Conf.GetBool("reverse"),
		sign:     sc.Conf.GetBool("sign"),
	}
	return measurePolygons(e, f, opt, in, out)
}

type polygonOptions struct {
	polyline bool
	reverse  bool
	sign     bool
}

func measurePolygons(e *geodesic.Ellipsoid, f formatter, opt polygonOptions, in io.Reader, out io.Writer) error {
	p := e.NewPolygon(opt.polyline)
	flush := func() error {
		if p.Count() == 0 {
			return nil
		}
		r := p.Compute(opt.reverse, opt.sign)
		p.Clear()
		glog.V(2).Infof("polygon with %d vertices: perimeter %v area %v", r.Count, r.Perimeter, r.Area)
		line := join(f.count(r.Count), f.distance(r.Perimeter))
		if r.HasArea {
			line = join(line, f.area(r.Area))
		}
		_, err := fmt.Fprintln(out, line)
		return err
	}

	names := []string{"lat", "lon"}
	sc := bufio.NewScanner(in)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		if text == "" {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		v, err := parseFloats(strings.Fields(text), names)
		if err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
		p.AddPoint(v[0], v[1])
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return flush()
}

func measureGeoJSON(e *geodesic.Ellipsoid, f formatter, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	gs, err := geodgeom.DecodeGeoJSON(data)
	if err != nil {
		return err
	}
	glog.V(1).Infof("decoded %d geometries", len(gs))
	for i, g := range gs {
		m, err := geodgeom.Measure(e, g)
		if err != nil {
			return errors.Wrapf(err, "geometry %d", i)
		}
		if _, err := fmt.Fprintln(out, join(f.distance(m.Length), f.distance(m.Perimeter), f.area(m.Area))); err != nil {
			return err
		}
	}
	return nil
}
