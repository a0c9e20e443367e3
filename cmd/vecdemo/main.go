// Command vecdemo prints the result of every vec operation for two vectors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/vec"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// vectorFlag parses "x,y" into a vec.Vector2.
type vectorFlag struct {
	v vec.Vector2
}

func (f *vectorFlag) String() string { return f.v.String() }

func (f *vectorFlag) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return errors.New("want x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	f.v = vec.V(x, y)
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		a       = vectorFlag{v: vec.V(3, 4)}
		b       = vectorFlag{v: vec.V(1, 2)}
		k       = fs.Float64("k", 2, "scalar for multiplication and division")
		verbose = fs.Bool("v", false, "log debug records to stderr")
		version = fs.Bool("version", false, "print the vec library version and exit")
	)
	fs.Var(&a, "a", "first vector as x,y")
	fs.Var(&b, "b", "second vector as x,y")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintln(stdout, "vecdemo", vec.Version)
		return 0
	}

	if *verbose {
		vec.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer vec.SetLogger(nil)
	}

	demo(stdout, a.v, b.v, *k)
	return 0
}

func demo(w io.Writer, a, b vec.Vector2, k float64) {
	fmt.Fprintln(w, "a:", a)
	fmt.Fprintln(w, "b:", b)
	fmt.Fprintln(w, "Addition:", a.Add(b))
	fmt.Fprintln(w, "Subtraction:", a.Sub(b))
	fmt.Fprintln(w, "Dot Product:", a.Dot(b))
	fmt.Fprintln(w, "Scalar Multiplication:", a.Scale(k))
	fmt.Fprintln(w, "Scalar Division:", result(a.Div(k)))
	fmt.Fprintln(w, "Magnitude of a:", a.Magnitude())
	fmt.Fprintln(w, "Normalized a:", result(a.Normalize()))
	fmt.Fprintln(w, "Angle between a and b (radians):", result(a.AngleBetween(b)))
	fmt.Fprintln(w, "Equality check:", a.Equal(b))
	fmt.Fprintln(w, "Negation of a:", a.Neg())
}

func result[T any](v T, err error) any {
	if err != nil {
		return "error: " + err.Error()
	}
	return v
}
