package main

import (
	"flag"
	"log"
	"os"

	"github.com/clarete/parsec/examples/arith"
)

func main() {
	var (
		inputPath = flag.String("input", "", "Path to the input file")
		expr      = flag.String("expr", "", "Arithmetic expression to evaluate, instead of -input")
	)
	flag.Parse()

	var src string
	switch {
	case *inputPath != "":
		data, err := os.ReadFile(*inputPath)
		if err != nil {
			log.Fatal(err)
		}
		src = string(data)
	case *expr != "":
		src = *expr
	default:
		log.Fatal("Neither -input nor -expr informed")
	}

	result, err := arith.Eval(src)
	if err != nil {
		log.Fatalf("Can't evaluate expression: %s", err.Error())
	}
	log.Printf("%s = %g", src, result)
}
