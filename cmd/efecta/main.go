package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/zephyrtronium/efecta"
	// import for side effects
	_ "github.com/zephyrtronium/efecta/coreext"
)

func main() {
	var cfgPath, encoding, file, cpuprofile string
	var trace bool
	var maxDepth int
	flag.StringVar(&cfgPath, "config", "", "settings file (default efecta.yaml beside the program, if present)")
	flag.StringVar(&encoding, "encoding", "", "character encoding of the program source")
	flag.BoolVar(&trace, "trace", false, "write each invocation to standard error")
	flag.IntVar(&maxDepth, "maxdepth", 0, "limit on nested invocations, or 0 for none (default from settings)")
	flag.StringVar(&file, "f", "", "Efecta source file (.esf)")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "write a CPU profile to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.esf [args...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if file == "" {
		if len(args) == 0 {
			fail("Error: no input file")
		}
		file, args = args[0], args[1:]
	}

	optional := cfgPath == ""
	if optional {
		cfgPath = filepath.Join(filepath.Dir(file), "efecta.yaml")
	}
	cfg, err := efecta.LoadConfig(cfgPath, optional)
	if err != nil {
		fail("Error:", err)
	}
	// Flags given explicitly override the settings file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "encoding":
			cfg.Encoding = encoding
		case "trace":
			cfg.Trace = trace
		case "maxdepth":
			cfg.MaxDepth = maxDepth
		}
	})

	var prof *os.File
	if cpuprofile != "" {
		prof, err = os.Create(cpuprofile)
		if err != nil {
			fail("Error:", err)
		}
		if err := pprof.StartCPUProfile(prof); err != nil {
			fail("Error:", err)
		}
	}
	status := run(cfg, file, args, os.Stdout, os.Stderr)
	if prof != nil {
		pprof.StopCPUProfile()
		prof.Close()
	}
	os.Exit(status)
}

// run executes a program file and returns the process exit status. Program
// output goes to stdout, and errors with their traces go to stderr.
func run(cfg efecta.Config, file string, args []string, stdout, stderr io.Writer) int {
	src, err := os.Open(file)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	defer src.Close()
	vm := efecta.NewVM(cfg)
	vm.Stdout = stdout
	if err := vm.Exec(src, args); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		var e *efecta.Error
		if errors.As(err, &e) {
			fmt.Fprint(stderr, e.TraceString())
		}
		return 1
	}
	return 0
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}
