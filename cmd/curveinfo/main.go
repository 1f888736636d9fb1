// Command curveinfo prints sampled properties of the easing and
// shaping curves in package curve.
//
// Usage:
//
//	curveinfo [flags] [curve-name ...]
//
// Without arguments it prints info for all known curves.
//
// Examples:
//
//	curveinfo smooth-step
//	curveinfo -samples 512 impulse cubic-pulse
//	curveinfo -k 8 exp-step
//	curveinfo -all
//	curveinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-geom/curve"
)

type curveEntry struct {
	name     string
	lo, hi   float64
	hasParam bool
	defParam float64
	build    func(param float64) func(t float64) float64
}

var registry = []curveEntry{
	{"smooth-step", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStep[float64]
	}},
	{"linear-step", 0, 1, false, 0, func(float64) func(float64) float64 {
		return func(t float64) float64 { return curve.LinearStep(0.25, 0.75, t) }
	}},
	{"ramp", -1, 1, false, 0, func(float64) func(float64) float64 {
		return curve.Ramp[float64]
	}},
	{"impulse", 0, 1, true, 8, func(k float64) func(float64) float64 {
		return func(t float64) float64 { return curve.Impulse(k, t) }
	}},
	{"cubic-pulse", 0, 1, true, 0.25, func(w float64) func(float64) float64 {
		return func(t float64) float64 { return curve.CubicPulse(0.5, w, t) }
	}},
	{"exp-step", 0, 1, true, 4, func(k float64) func(float64) float64 {
		return func(t float64) float64 { return curve.ExpStep(t, k, 2) }
	}},
	{"parabola", 0, 1, true, 1, func(k float64) func(float64) float64 {
		return func(t float64) float64 { return curve.Parabola(t, k) }
	}},
	{"p-curve", 0, 1, true, 3, func(a float64) func(float64) float64 {
		return func(t float64) float64 { return curve.PCurve(t, a, 1) }
	}},
	{"smooth-start-2", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStart2[float64]
	}},
	{"smooth-start-3", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStart3[float64]
	}},
	{"smooth-start-4", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStart4[float64]
	}},
	{"smooth-start-5", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStart5[float64]
	}},
	{"smooth-stop-2", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStop2[float64]
	}},
	{"smooth-stop-3", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStop3[float64]
	}},
	{"smooth-stop-4", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStop4[float64]
	}},
	{"smooth-stop-5", 0, 1, false, 0, func(float64) func(float64) float64 {
		return curve.SmoothStop5[float64]
	}},
	{"almost-identity", 0, 1, true, 0.5, func(m float64) func(float64) float64 {
		return func(t float64) float64 { return curve.AlmostIdentity(t, m, m/4) }
	}},
	{"sustained-impulse", 0, 1, true, 8, func(k float64) func(float64) float64 {
		return func(t float64) float64 { return curve.ExpSustainedImpulse(t, 0.25, k) }
	}},
}

func main() {
	samples := flag.Int("samples", 256, "number of evaluation points per curve")
	param := flag.Float64("k", math.NaN(), "parameter override for parametric curves")
	all := flag.Bool("all", false, "show all curves")
	list := flag.Bool("list", false, "list available curve names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: curveinfo [flags] [curve-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints sampled properties of easing and shaping curves.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all curves.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  curveinfo smooth-step impulse\n")
		fmt.Fprintf(os.Stderr, "  curveinfo -samples 512 -k 8 exp-step\n")
		fmt.Fprintf(os.Stderr, "  curveinfo -all\n")
		fmt.Fprintf(os.Stderr, "  curveinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, *param)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching curves\n")
		os.Exit(1)
	}

	printAnalysis(entries, *samples)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type resolvedEntry struct {
	curveEntry
	paramOverride float64
}

func resolveEntries(names []string, paramFlag float64) []resolvedEntry {
	byName := make(map[string]curveEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []resolvedEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown curve %q (use -list to see available)\n", name)
			continue
		}
		p := e.defParam
		if e.hasParam && !math.IsNaN(paramFlag) {
			p = paramFlag
		}
		result = append(result, resolvedEntry{e, p})
	}
	return result
}

func printAnalysis(entries []resolvedEntry, samples int) {
	if samples < 2 {
		samples = 2
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Curve\tDomain\tf(lo)\tf(mid)\tf(hi)\tMin\tMax\tArgmax\n")
	fmt.Fprintf(tw, "-----\t------\t-----\t------\t-----\t---\t---\t------\n")

	for _, e := range entries {
		f := e.build(e.paramOverride)

		lo, hi := e.lo, e.hi
		minV := math.Inf(1)
		maxV := math.Inf(-1)
		argmax := lo
		for i := 0; i < samples; i++ {
			t := lo + (hi-lo)*float64(i)/float64(samples-1)
			v := f(t)
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
				argmax = t
			}
		}

		label := e.name
		if e.hasParam {
			label = fmt.Sprintf("%s (k=%.2f)", e.name, e.paramOverride)
		}

		fmt.Fprintf(tw, "%s\t[%g, %g]\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			label, lo, hi,
			f(lo), f((lo+hi)/2), f(hi),
			minV, maxV, argmax,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
