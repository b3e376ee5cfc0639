package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Egor213/LogiGraph/internal/app"
)

func main() {
	file := flag.String("file", "", "path to a CSV or XLSX log export")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: loadlogs -file <path>")
		os.Exit(2)
	}

	if err := app.Load(*file, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
