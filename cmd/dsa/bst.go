package main

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/MohsenEbrahimi86/dsa/bst"
)

var cmdBST = &cli.Command{
	Name:  "bst",
	Usage: "work with a plain (non-balancing) binary search tree",
	Subcommands: []*cli.Command{
		cmdBSTDemo,
	},
}

var cmdBSTDemo = &cli.Command{
	Name:   "demo",
	Usage:  "insert a sample data set and show traversals, deletes, and stats",
	Action: runBSTDemo,
}

func runBSTDemo(cctx *cli.Context) error {
	tr := bst.New[int]()
	values := []int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45}
	tr.Insert(values...)
	fmt.Printf("inserted %v\n", values)

	fmt.Printf("in order:   %v\n", slices.Collect(tr.InOrder()))
	fmt.Printf("pre order:  %v\n", slices.Collect(tr.PreOrder()))
	fmt.Printf("post order: %v\n", slices.Collect(tr.PostOrder()))
	fmt.Printf("height: %d, len: %d\n", tr.Height(), tr.Len())

	if v, ok := tr.Min(); ok {
		fmt.Printf("min: %d\n", v)
	}
	if v, ok := tr.Max(); ok {
		fmt.Printf("max: %d\n", v)
	}

	for _, v := range []int{40, 100} {
		fmt.Printf("contains(%d): %v\n", v, tr.Contains(v))
	}

	for _, v := range []int{20, 30, 50} {
		tr.Delete(v)
		fmt.Printf("after delete(%d): %v\n", v, tr)
	}
	fmt.Printf("height: %d, len: %d\n", tr.Height(), tr.Len())
	return nil
}
