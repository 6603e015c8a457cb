// geomcheck answers geometry queries from the command line. It is
// mostly useful for checking what a hit-test or bounding box should
// come out to when debugging a diagram.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/internal/config"
	"deedles.dev/xgeom/internal/xlog"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(w io.Writer, args [][]float64) error
}

var commands = map[string]command{
	"bbox": {
		usage: "x,y [x,y ...]",
		run: func(w io.Writer, args [][]float64) error {
			points := make([]geom.Point[float64], 0, len(args))
			for _, a := range args {
				if len(a) != 2 {
					return fmt.Errorf("point %v: %w", a, errUsage)
				}
				points = append(points, geom.Pt(a[0], a[1]))
			}

			bb, ok := geom.BoundingBox(slices.Values(points))
			if !ok {
				return errors.New("no points")
			}
			_, err := fmt.Fprintln(w, bb)
			return err
		},
	},
	"contains": rectPointCommand(func(r geom.Rect[float64], p geom.Point[float64]) any {
		return r.ContainsPt(p.X, p.Y)
	}),
	"dist": rectPointCommand(func(r geom.Rect[float64], p geom.Point[float64]) any {
		return r.DistSq(p.X, p.Y)
	}),
	"outcode": rectPointCommand(func(r geom.Rect[float64], p geom.Point[float64]) any {
		out := r.Outcode(p.X, p.Y)
		return fmt.Sprintf("%d %v", uint32(out), out)
	}),
	"intersects": {
		usage: "x,y,w,h x,y,w,h",
		run: func(w io.Writer, args [][]float64) error {
			if len(args) != 2 || len(args[0]) != 4 || len(args[1]) != 4 {
				return errUsage
			}
			a, b := rect(args[0]), rect(args[1])
			_, err := fmt.Fprintln(w, a.Intersects(b))
			return err
		},
	},
	"line": {
		usage: "x,y,w,h x1,y1,x2,y2",
		run: func(w io.Writer, args [][]float64) error {
			if len(args) != 2 || len(args[0]) != 4 || len(args[1]) != 4 {
				return errUsage
			}
			l := geom.Ln(args[1][0], args[1][1], args[1][2], args[1][3])
			_, err := fmt.Fprintln(w, rect(args[0]).IntersectsLine(l))
			return err
		},
	},
	"circle": {
		usage: "cx,cy,r px,py",
		run: func(w io.Writer, args [][]float64) error {
			if len(args) != 2 || len(args[0]) != 3 || len(args[1]) != 2 {
				return errUsage
			}
			c := geom.Circ(args[0][0], args[0][1], args[0][2])
			_, err := fmt.Fprintln(w, c.ContainsPt(args[1][0], args[1][1]))
			return err
		},
	},
}

func rectPointCommand(f func(geom.Rect[float64], geom.Point[float64]) any) command {
	return command{
		usage: "x,y,w,h px,py",
		run: func(w io.Writer, args [][]float64) error {
			if len(args) != 2 || len(args[0]) != 4 || len(args[1]) != 2 {
				return errUsage
			}
			_, err := fmt.Fprintln(w, f(rect(args[0]), geom.Pt(args[1][0], args[1][1])))
			return err
		},
	}
}

func rect(v []float64) geom.Rect[float64] {
	return geom.Rt(v[0], v[1], v[2], v[3])
}

// parseTuple parses a comma-separated list of numbers.
func parseTuple(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	v := make([]float64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		v = append(v, n)
	}
	return v, nil
}

func run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	tuples := make([][]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := parseTuple(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		tuples = append(tuples, v)
	}

	log.Debug().Str("cmd", args[0]).Interface("args", tuples).Msg("running")
	err := cmd.run(w, tuples)
	if errors.Is(err, errUsage) {
		return fmt.Errorf("%v %v: %w", args[0], cmd.usage, err)
	}
	return err
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] <command> [args...]\n\nCommands:\n", os.Args[0])
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(flag.CommandLine.Output(), "  %v %v\n", name, commands[name].usage)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	level := flag.String("level", "", "log level, overriding $XGEOM_LOG_LEVEL")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *level != "" {
		cfg.LogLevel = *level
	}

	closer, err := xlog.Init(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}

	err = run(os.Stdout, flag.Args())
	if err != nil {
		log.Error().Err(err).Msg("query failed")
		if errors.Is(err, errUsage) {
			exit(closer, 2)
		}
		exit(closer, 1)
	}
	exit(closer, 0)
}

// exit closes the log and then exits with code, which is raised to 1
// if the log could not be closed.
func exit(closer io.Closer, code int) {
	if !closeLog(os.Stderr, closer) && code == 0 {
		code = 1
	}
	os.Exit(code)
}

// closeLog closes the log output and reports a failure to stderr.
func closeLog(stderr io.Writer, closer io.Closer) bool {
	err := closer.Close()
	if err != nil {
		fmt.Fprintf(stderr, "close log: %v\n", err)
		return false
	}
	return true
}
