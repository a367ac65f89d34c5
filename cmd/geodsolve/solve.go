package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/geodlab/geodesic"
)

func fullResult(f formatter, r geodesic.Result) string {
	return join(
		f.angle(r.Lat1), f.angle(r.Lon1), f.angle(r.Azi1),
		f.angle(r.Lat2), f.angle(r.Lon2), f.angle(r.Azi2),
		f.distance(r.Distance), f.angle(r.Arc), f.distance(r.ReducedLength),
		f.scale(r.M12), f.scale(r.M21), f.area(r.Area))
}

// noneOr accepts either no arguments, meaning records come from stdin, or
// exactly n.
func noneOr(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != n {
			return errors.Errorf("accepts 0 or %d args, received %d", n, len(args))
		}
		return nil
	}
}

func newInverseCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "inverse [lat1 lon1 lat2 lon2]",
		Short: "Find the geodesic between two points",
		Long: `
Solve the inverse geodesic problem. Prints "azi1 azi2 s12", or with --full
"lat1 lon1 azi1 lat2 lon2 azi2 s12 a12 m12 M12 M21 S12".
`,
		Args: noneOr(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInverse(cmd, sc, args)
		},
	}
	sc.Cmd.Flags().Bool("full", false, "Print every quantity of the solution.")
	return sc
}

func runInverse(cmd *cobra.Command, sc *subCommand, args []string) error {
	e, err := ellipsoidFromConf(sc.Conf)
	if err != nil {
		return err
	}
	f := newFormatter(sc.Conf)
	full := sc.Conf.GetBool("full")
	out := cmd.OutOrStdout()
	names := []string{"lat1", "lon1", "lat2", "lon2"}
	return runRecords(cmd.InOrStdin(), args, names, func(v []float64) error {
		if full {
			r := e.GenInverse(v[0], v[1], v[2], v[3], geodesic.All)
			glog.V(2).Infof("inverse %v: arc %v", v, r.Arc)
			_, err := fmt.Fprintln(out, fullResult(f, r))
			return err
		}
		var s12, azi1, azi2 float64
		e.Inverse(v[0], v[1], v[2], v[3], &s12, &azi1, &azi2)
		_, err := fmt.Fprintln(out, join(f.angle(azi1), f.angle(azi2), f.distance(s12)))
		return err
	})
}

func newDirectCmd() *subCommand {
	sc := &subCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "direct [lat1 lon1 azi1 s12]",
		Short: "Travel a distance along a geodesic",
		Long: `
Solve the direct geodesic problem. Prints "lat2 lon2 azi2", or with --full
"lat1 lon1 azi1 lat2 lon2 azi2 s12 a12 m12 M12 M21 S12". With --arc the last
input is the arc length on the auxiliary sphere in degrees.
`,
		Args: noneOr(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirect(cmd, sc, args)
		},
	}
	flags := sc.Cmd.Flags()
	flags.Bool("full", false, "Print every quantity of the solution.")
	flags.Bool("arc", false, "Interpret the distance as an arc length in degrees.")
	flags.Bool("unroll", false, "Report the longitude unrolled rather than reduced to [-180, 180].")
	return sc
}

func runDirect(cmd *cobra.Command, sc *subCommand, args []string) error {
	e, err := ellipsoidFromConf(sc.Conf)
	if err != nil {
		return err
	}
	f := newFormatter(sc.Conf)
	var flags geodesic.Flags
	if sc.Conf.GetBool("arc") {
		flags |= geodesic.ArcMode
	}
	if sc.Conf.GetBool("unroll") {
		flags |= geodesic.LongUnroll
	}
	mask := geodesic.Standard
	full := sc.Conf.GetBool("full")
	if full {
		mask = geodesic.All
	}
	out := cmd.OutOrStdout()
	names := []string{"lat1", "lon1", "azi1", "s12"}
	return runRecords(cmd.InOrStdin(), args, names, func(v []float64) error {
		r := e.GenDirect(v[0], v[1], v[2], flags, v[3], mask)
		glog.V(2).Infof("direct %v: arc %v", v, r.Arc)
		line := join(f.angle(r.Lat2), f.angle(r.Lon2), f.angle(r.Azi2))
		if full {
			line = fullResult(f, r)
		}
		_, err := fmt.Fprintln(out, line)
		return err
	})
}
