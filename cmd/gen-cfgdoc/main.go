package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seitarof/gen-cfgdoc/internal/cli"
	"github.com/seitarof/gen-cfgdoc/internal/generator"
	"github.com/seitarof/gen-cfgdoc/internal/matcher"
	"github.com/seitarof/gen-cfgdoc/internal/parser"
	"github.com/seitarof/gen-cfgdoc/internal/resolver"
)

var version = "dev"

func main() {
	log.SetFlags(0)

	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	p := parser.New()
	dm := matcher.NewDeclMatcher()
	fm := matcher.NewFieldMatcher()
	r := resolver.New(resolver.DefaultRules()...)
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w, r)

	runner := cli.NewRunner(p, dm, fm, r, g, os.Stdout)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
