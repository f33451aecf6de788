// Command bookscan plans library signups for the book scanning problem.
//
//	bookscan solve inputs/b_read_on.txt --algo genetic --preset auto --out b.out
//	bookscan compare inputs/c_incunabula.txt --algos greedy,local-best
//	bookscan score inputs/c_incunabula.txt c.out
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bookscan:", err)
		os.Exit(1)
	}
}
