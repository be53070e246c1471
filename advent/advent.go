// Command advent solves the Advent of Code 2020 puzzles.
//
// Usage:
//
//	advent [flags] day [inputfile]
//
// The puzzle input is read from inputfile, or from stdin if no file is
// given. Both answers are printed as
//
//	<day>.a = <answer>
//	<day>.b = <answer>
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", "", "ini file of per-day parameters (default "+defaultConfigFile+", if present)")
		verbose    = flag.Bool("v", false, "log timing and resource usage")
		dump       = flag.Bool("dump", false, "print the parsed input rather than solving")
		profile    = flag.String("fgprof", "", "write a wall-clock profile of the solve to this file")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}

	day, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("bad day %q", flag.Arg(0))
	}
	newSolution, ok := solutions[day]
	if !ok {
		log.Fatalf("unknown day %d", day)
	}
	s := newSolution()

	conf, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalln("Error loading config:", err)
	}
	if err := configure(s, conf.Section(strconv.Itoa(day))); err != nil {
		log.Fatalf("Bad config for day %d: %s", day, err)
	}

	input, err := readInput(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("read %s of input", humanize.Bytes(uint64(len(input))))
	}

	if *dump {
		d, ok := s.(dumper)
		if !ok {
			log.Fatalf("day %d does not support -dump", day)
		}
		v, err := d.dump(input)
		if err != nil {
			log.Fatal(err)
		}
		pretty.Println(v)
		return
	}

	var stopProfile func() error
	if *profile != "" {
		stopProfile, err = startProfile(*profile)
		if err != nil {
			log.Fatalln("Cannot start profile:", err)
		}
	}
	start := time.Now()
	r, err := solve(s, input)
	elapsed := time.Since(start)
	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			log.Println("Error writing profile:", err)
		}
	}
	if err != nil {
		log.Fatalf("day %d: %s", day, err)
	}

	fmt.Printf("%d.a = %v\n", day, r.a)
	fmt.Printf("%d.b = %v\n", day, r.b)
	if *verbose {
		log.Printf("part a: %s", r.elapsedA.Round(time.Microsecond))
		log.Printf("part b: %s", r.elapsedB.Round(time.Microsecond))
		log.Printf("total: %s", elapsed.Round(time.Microsecond))
		if ru, ok := resourceUsage(); ok {
			log.Print(ru)
		}
	}
}

func usage() {
	var days []int
	for day := range solutions {
		days = append(days, day)
	}
	sort.Ints(days)
	fmt.Fprintf(os.Stderr, "usage: %s [flags] day [inputfile]\n", os.Args[0])
	fmt.Fprint(os.Stderr, "where day is one of:")
	for _, day := range days {
		fmt.Fprintf(os.Stderr, " %d", day)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution answers both parts of one day's puzzle.
// Each part parses the raw input itself, so the parts share no state
// and may run concurrently.
type solution interface {
	partA(input string) (any, error)
	partB(input string) (any, error)
}

// answer adapts a typed part result to the solution interface. On error
// the answer is nil.
func answer[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// A dumper exposes the parsed form of its input for inspection.
type dumper interface {
	dump(input string) (any, error)
}

var solutions = make(map[int]func() solution)

func register(day int, newSolution func() solution) {
	if _, ok := solutions[day]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for day %d", day))
	}
	solutions[day] = newSolution
}

type result struct {
	a, b     any
	elapsedA time.Duration
	elapsedB time.Duration
}

// solve runs both parts of s against input, each in its own goroutine.
func solve(s solution, input string) (*result, error) {
	var r result
	var g wait.Group
	g.Go(func(<-chan struct{}) error {
		start := time.Now()
		v, err := s.partA(input)
		if err != nil {
			return fmt.Errorf("part a: %w", err)
		}
		r.a, r.elapsedA = v, time.Since(start)
		return nil
	})
	g.Go(func(<-chan struct{}) error {
		start := time.Now()
		v, err := s.partB(input)
		if err != nil {
			return fmt.Errorf("part b: %w", err)
		}
		r.b, r.elapsedB = v, time.Since(start)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &r, nil
}

func readInput(name string) (string, error) {
	var r io.Reader = os.Stdin
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
