// The tuplegen command generates the per-arity code of the
// tuple, hlist and tuple/tuplefunc packages.
//
// Usage:
//
//	tuplegen [-config file] [-n maxarity] [-module path] [-root dir] [-v]
//
// Settings are read from the YAML file named by -config, if any;
// flags given explicitly take precedence over the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rogpeppe/tuplelist/internal/tuplegen"
)

func main() {
	var (
		configFile = flag.String("config", "", "YAML configuration file")
		maxArity   = flag.Int("n", tuplegen.DefaultMaxArity, "Largest tuple arity to generate")
		module     = flag.String("module", tuplegen.DefaultModule, "Import path of the module root")
		root       = flag.String("root", ".", "Directory of the module root")
		verbose    = flag.Bool("v", false, "Log each file written")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("tuplegen: ")

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := tuplegen.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = tuplegen.LoadConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.MaxArity = *maxArity
		case "module":
			cfg.Module = *module
		case "root":
			cfg.Root = *root
		}
	})

	files, err := tuplegen.Generate(cfg)
	if err != nil {
		var ferr *tuplegen.FormatError
		if errors.As(err, &ferr) {
			if p, werr := tuplegen.WriteUnformatted(cfg.Root, ferr); werr != nil {
				log.Printf("cannot write unformatted source: %v", werr)
			} else {
				log.Printf("unformatted source written to %s", p)
			}
		}
		log.Fatalf("generation failed: %v", err)
	}
	if err := tuplegen.WriteFiles(cfg.Root, files); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		for _, f := range files {
			log.Printf("wrote %s (%d bytes)", f.Path, len(f.Content))
		}
	}
}
