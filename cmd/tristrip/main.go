// Command tristrip converts an indexed triangle mesh into triangle strips.
//
// Usage:
//
//	tristrip [-opts options.yaml] [-stats] [-verify] [-quiet] mesh.obj
//
// The input is either a Wavefront OBJ file (only triangular "f" faces are
// consumed) or a plain text file of whitespace-separated vertex indices,
// three per triangle. Strips are printed one per line unless -quiet is set.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tristrip/stats"
	"github.com/katalvlaran/tristrip/strip"
	"github.com/katalvlaran/tristrip/verify"
)

// optionsFile mirrors strip.Options for YAML loading; absent keys keep
// their defaults.
type optionsFile struct {
	UseTunneling            *bool  `yaml:"use_tunneling"`
	PreserveOrientation     *bool  `yaml:"preserve_orientation"`
	Preproc                 string `yaml:"preproc_algorithm"`
	MaxCount                *int   `yaml:"max_count"`
	Incremental             *bool  `yaml:"incremental"`
	LoopLimit               *int   `yaml:"loop_limit"`
	BacktrackAfterLoopLimit *bool  `yaml:"backtrack_after_loop_limit"`
	DestCount               *int   `yaml:"dest_count"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tristrip: ")

	optsPath := flag.String("opts", "", "YAML file overriding the default options")
	showStats := flag.Bool("stats", false, "print strip statistics")
	doVerify := flag.Bool("verify", false, "verify the strips against the input triangles")
	quiet := flag.Bool("quiet", false, "do not print the strips themselves")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts, err := loadOptions(*optsPath)
	if err != nil {
		log.Fatalf("options: %v", err)
	}

	ids, err := readMesh(flag.Arg(0))
	if err != nil {
		log.Fatalf("input: %v", err)
	}

	strips, err := strip.Build(ids, opts)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if !*quiet {
		w := bufio.NewWriter(os.Stdout)
		for i := range strips {
			for j, id := range strips[i].IDs {
				if j > 0 {
					fmt.Fprint(w, " ")
				}
				fmt.Fprint(w, id)
			}
			fmt.Fprintln(w)
		}
		w.Flush()
	}

	if *showStats {
		printStats(stats.Calculate(strips))
	}

	if *doVerify {
		v, err := verify.New(ids)
		if err != nil {
			log.Fatalf("verify: %v", err)
		}

		report := v.Verify(strips)
		if !report.OK() {
			printReport(report)
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, "cover ok")
	}
}

// loadOptions merges a YAML file over DefaultOptions. An empty path keeps
// the defaults untouched.
func loadOptions(path string) (strip.Options, error) {
	opts := strip.DefaultOptions()

	if path == "" {
		return opts, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var f optionsFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return opts, err
	}

	if f.UseTunneling != nil {
		opts.UseTunneling = *f.UseTunneling
	}
	if f.PreserveOrientation != nil {
		opts.PreserveOrientation = *f.PreserveOrientation
	}
	if f.MaxCount != nil {
		opts.MaxCount = *f.MaxCount
	}
	if f.Incremental != nil {
		opts.Incremental = *f.Incremental
	}
	if f.LoopLimit != nil {
		opts.LoopLimit = *f.LoopLimit
	}
	if f.BacktrackAfterLoopLimit != nil {
		opts.BacktrackAfterLoopLimit = *f.BacktrackAfterLoopLimit
	}
	if f.DestCount != nil {
		opts.DestCount = *f.DestCount
	}

	switch f.Preproc {
	case "":
	case "isolated":
		opts.Preproc = strip.PreprocIsolated
	case "pairs":
		opts.Preproc = strip.PreprocPairs
	case "stripify":
		opts.Preproc = strip.PreprocStripify
	default:
		return opts, fmt.Errorf("unknown preproc_algorithm %q", f.Preproc)
	}

	return opts, nil
}

// readMesh loads a triangle index list: OBJ "f" faces when present,
// otherwise plain whitespace-separated indices. OBJ indices are 1-based
// and may carry /vt/vn suffixes; only triangles are accepted.
func readMesh(path string) ([]strip.ID, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var ids []strip.ID
	sawFace := false

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if fields[0] == "f" {
			sawFace = true

			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: face with %d vertices, only triangles are supported", line, len(fields)-1)
			}

			for _, field := range fields[1:] {
				id, err := parseOBJIndex(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				ids = append(ids, id)
			}

			continue
		}

		if sawFace || !isNumeric(fields[0]) {
			// Other OBJ records (v, vn, vt, o, …) are ignored.
			continue
		}

		for _, field := range fields {
			n, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ids = append(ids, strip.ID(n))
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// parseOBJIndex parses an OBJ face vertex like "7", "7/3" or "7/3/1" into
// a zero-based vertex id.
func parseOBJIndex(field string) (strip.ID, error) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		field = field[:i]
	}

	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, err
	}

	if n == 0 {
		return 0, fmt.Errorf("obj indices are 1-based, got 0")
	}

	return strip.ID(n - 1), nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 32)

	return err == nil
}

func printStats(s stats.Stats) {
	fmt.Fprintf(os.Stderr, "strips:     %d\n", s.Strips)
	fmt.Fprintf(os.Stderr, "triangles:  %d\n", s.ValidTris)
	fmt.Fprintf(os.Stderr, "swaps:      %d\n", s.Swaps)

	for swapCost := 0; swapCost <= 1; swapCost++ {
		for restartCost := 0; restartCost <= 2; restartCost++ {
			fmt.Fprintf(os.Stderr, "cost SW%d/PR%d: %d\n", swapCost, restartCost, s.VertexCost[swapCost][restartCost])
		}
	}
}

func printReport(r verify.Report) {
	for _, m := range r.Unknown {
		fmt.Fprintf(os.Stderr, "unknown triangle (%d, %d, %d): in the strips but not in the input\n", m.Tri[0], m.Tri[1], m.Tri[2])
	}

	for _, m := range r.Superfluous {
		fmt.Fprintf(os.Stderr, "superfluous triangle (%d, %d, %d): %d time(s) in the strips, %d in the input\n", m.Tri[0], m.Tri[1], m.Tri[2], m.Got, m.Want)
	}

	for _, m := range r.Missing {
		fmt.Fprintf(os.Stderr, "missing triangle (%d, %d, %d): %d time(s) in the strips, %d in the input\n", m.Tri[0], m.Tri[1], m.Tri[2], m.Got, m.Want)
	}
}
