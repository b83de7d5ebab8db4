// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/firefaith/repl"
)

const VERSION = "0.0.1"

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	shell := repl.NewRepl(os.Stdout)
	shell.Vm.Verbose = verbose

	fmt.Printf("Firefaith %v\n", VERSION)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			break
		}

		quit, err := shell.Eval(scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin: %v", err)
	}
}
