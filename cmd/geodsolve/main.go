// geodsolve solves geodesic problems and measures geodesic polygons from the
// command line.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/geodlab/geodesic"
)

const envPrefix = "GEODSOLVE"

// subCommand pairs a cobra command with the viper instance its flags,
// environment and config file are read through.
type subCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper
}

func newRootCmd() *cobra.Command {
	rootConf := viper.New()
	root := &cobra.Command{
		Use:   "geodsolve",
		Short: "Solve geodesic problems on an ellipsoid",
		Long: `
geodsolve computes geodesics on an ellipsoid of revolution. The inverse
command finds the shortest path between two points, direct travels a given
distance along an azimuth and planimeter measures polygons whose edges are
geodesics.

Positions are given in decimal degrees, distances in meters. Negative values
may be passed as they are, as in "geodsolve inverse -33.9 18.4 51.5 -0.13".
Commands read whitespace separated records from standard input when no
arguments are given.
`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	pf.String("ellipsoid", "wgs84", "Reference ellipsoid, one of [wgs84, grs80, sphere]")
	pf.Float64("radius", 0, "Equatorial radius in meters. Overrides --ellipsoid.")
	pf.Float64("flattening", 0, "Flattening of the ellipsoid given with --radius.")
	pf.Int("prec", 3, "Output precision; distances get prec decimals, angles prec+5.")
	pf.Bool("human", false, "Print distances in km and areas in km² with digit grouping.")
	if err := rootConf.BindPFlags(pf); err != nil {
		glog.Fatalf("binding root flags: %v", err)
	}

	subcommands := []*subCommand{newInverseCmd(), newDirectCmd(), newPlanimeterCmd()}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		if err := sc.Conf.BindPFlags(sc.Cmd.Flags()); err != nil {
			glog.Fatalf("binding %s flags: %v", sc.Cmd.Name(), err)
		}
		if err := sc.Conf.BindPFlags(pf); err != nil {
			glog.Fatalf("binding %s flags: %v", sc.Cmd.Name(), err)
		}
		sc.Conf.SetEnvPrefix(envPrefix)
		sc.Conf.AutomaticEnv()
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return nil
		}
		glog.V(1).Infof("reading config %s", cfg)
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "reading config %s", cfg)
			}
		}
		return nil
	}
	return root
}

// ellipsoidFromConf picks the ellipsoid named by the configuration. An
// explicit radius wins over the preset name.
func ellipsoidFromConf(conf *viper.Viper) (*geodesic.Ellipsoid, error) {
	if a := conf.GetFloat64("radius"); a != 0 {
		e, err := geodesic.NewEllipsoid(a, conf.GetFloat64("flattening"))
		if err != nil {
			return nil, err
		}
		glog.V(1).Infof("using ellipsoid a=%v f=%v", e.Radius(), e.Flattening())
		return e, nil
	}
	var e *geodesic.Ellipsoid
	switch name := conf.GetString("ellipsoid"); name {
	case "wgs84", "WGS84":
		e = geodesic.WGS84
	case "grs80", "GRS80":
		e = geodesic.GRS80
	case "sphere":
		e = geodesic.Globe
	default:
		return nil, errors.Errorf("unknown ellipsoid %q", name)
	}
	glog.V(1).Infof("using ellipsoid %s a=%v f=%v", conf.GetString("ellipsoid"), e.Radius(), e.Flattening())
	return e, nil
}

func main() {
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Warningf("setting logtostderr: %v", err)
	}
	// Silences glog's complaint about logging before flag parsing; the real
	// values arrive through pflag.
	_ = goflag.CommandLine.Parse(nil)

	err := run(newRootCmd(), os.Args[1:])
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
