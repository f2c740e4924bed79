// Package main is the frameconv CLI, a shell front end to the bridge's frame
// conversions.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/num/quat"

	"github.com/airlink-robotics/mavbridge/frametf"
	"github.com/airlink-robotics/mavbridge/utils"
)

const (
	// Flags.
	flagDebug     = "debug"
	flagTransform = "transform"
	flagRoll      = "roll"
	flagPitch     = "pitch"
	flagYaw       = "yaw"
	flagX         = "x"
	flagY         = "y"
	flagZ         = "z"
	flagRotRoll   = "rot-roll"
	flagRotPitch  = "rot-pitch"
	flagRotYaw    = "rot-yaw"
	flagValues    = "values"
)

func main() {
	var logger golog.Logger

	transformFlag := &cli.StringFlag{
		Name:     flagTransform,
		Aliases:  []string{"t"},
		Usage:    "static transform: NED_TO_ENU, ENU_TO_NED, AIRCRAFT_TO_BASELINK or BASELINK_TO_AIRCRAFT",
		Required: true,
	}

	app := &cli.App{
		Name:  "frameconv",
		Usage: "convert orientations, vectors and covariances between frame conventions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("frameconv")
			} else {
				logger = golog.NewLogger("frameconv")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "orientation",
				Usage: "transform an orientation given as roll/pitch/yaw degrees",
				Flags: []cli.Flag{
					transformFlag,
					&cli.Float64Flag{Name: flagRoll, Usage: "roll in degrees"},
					&cli.Float64Flag{Name: flagPitch, Usage: "pitch in degrees"},
					&cli.Float64Flag{Name: flagYaw, Usage: "yaw in degrees"},
				},
				Action: func(c *cli.Context) error {
					tf, err := frametf.ParseStaticTF(c.String(flagTransform))
					if err != nil {
						return err
					}
					q := frametf.QuatFromRPY(
						utils.DegToRad(c.Float64(flagRoll)),
						utils.DegToRad(c.Float64(flagPitch)),
						utils.DegToRad(c.Float64(flagYaw)),
					)
					logger.Debugw("transforming orientation", "transform", tf.String(), "static_quat", tf.Quat())
					out := frametf.TransformOrientation(q, tf)
					printQuat(out)
					return nil
				},
			},
			{
				Name:  "vector",
				Usage: "rotate a vector by a static transform or an arbitrary rotation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagTransform,
						Aliases: []string{"t"},
						Usage:   "static transform tag; omit to rotate by --rot-roll/--rot-pitch/--rot-yaw instead",
					},
					&cli.Float64Flag{Name: flagX},
					&cli.Float64Flag{Name: flagY},
					&cli.Float64Flag{Name: flagZ},
					&cli.Float64Flag{Name: flagRotRoll, Usage: "rotation roll in degrees"},
					&cli.Float64Flag{Name: flagRotPitch, Usage: "rotation pitch in degrees"},
					&cli.Float64Flag{Name: flagRotYaw, Usage: "rotation yaw in degrees"},
				},
				Action: func(c *cli.Context) error {
					v := r3.Vector{X: c.Float64(flagX), Y: c.Float64(flagY), Z: c.Float64(flagZ)}
					var out r3.Vector
					if c.IsSet(flagTransform) {
						tf, err := frametf.ParseStaticTF(c.String(flagTransform))
						if err != nil {
							return err
						}
						logger.Debugw("static rotation", "transform", tf.String())
						out = frametf.TransformStaticFrame(v, tf)
					} else {
						q := frametf.QuatFromRPY(
							utils.DegToRad(c.Float64(flagRotRoll)),
							utils.DegToRad(c.Float64(flagRotPitch)),
							utils.DegToRad(c.Float64(flagRotYaw)),
						)
						logger.Debugw("arbitrary rotation", "quat", q)
						out = frametf.TransformFrame(v, q)
					}
					fmt.Printf("[% .6f % .6f % .6f]\n", out.X, out.Y, out.Z)
					return nil
				},
			},
			{
				Name:  "covariance",
				Usage: "transform a flattened row-major covariance of order 3, 6 or 9",
				Flags: []cli.Flag{
					transformFlag,
					&cli.StringFlag{
						Name:     flagValues,
						Usage:    "comma-separated matrix values (9, 36 or 81 of them)",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					tf, err := frametf.ParseStaticTF(c.String(flagTransform))
					if err != nil {
						return err
					}
					vals, err := parseFloats(c.String(flagValues))
					if err != nil {
						return err
					}
					out, order, err := transformCovariance(vals, tf)
					if err != nil {
						return err
					}
					logger.Debugw("transformed covariance", "order", order, "transform", tf.String())
					printMatrix(out, order)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad covariance value %q", f)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func transformCovariance(vals []float64, tf frametf.StaticTF) ([]float64, int, error) {
	switch len(vals) {
	case 9:
		var c frametf.Covariance3
		copy(c[:], vals)
		out := c.TransformStaticFrame(tf)
		return out[:], 3, nil
	case 36:
		var c frametf.Covariance6
		copy(c[:], vals)
		out := c.TransformStaticFrame(tf)
		return out[:], 6, nil
	case 81:
		var c frametf.Covariance9
		copy(c[:], vals)
		out := c.TransformStaticFrame(tf)
		return out[:], 9, nil
	}
	return nil, 0, errors.Errorf("expected 9, 36 or 81 covariance values, got %d", len(vals))
}

func printQuat(q quat.Number) {
	fmt.Printf("q   = [w % .6f  x % .6f  y % .6f  z % .6f]\n", q.Real, q.Imag, q.Jmag, q.Kmag)
	roll, pitch, yaw := frametf.RPYFromQuat(q)
	fmt.Printf("rpy = [% .3f % .3f % .3f] deg\n",
		utils.RadToDeg(roll), utils.RadToDeg(pitch), utils.RadToDeg(yaw))
}

func printMatrix(vals []float64, n int) {
	for i := 0; i < n; i++ {
		row := make([]string, n)
		for j := 0; j < n; j++ {
			row[j] = fmt.Sprintf("% .6f", vals[i*n+j])
		}
		fmt.Println(strings.Join(row, " "))
	}
}
