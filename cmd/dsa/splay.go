package main

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/MohsenEbrahimi86/dsa/splaytree"
)

var cmdSplay = &cli.Command{
	Name:  "splay",
	Usage: "work with a self-adjusting (splay) search tree",
	Subcommands: []*cli.Command{
		cmdSplayDemo,
		cmdSplayPrint,
		cmdSplayBench,
	},
}

var cmdSplayDemo = &cli.Command{
	Name:   "demo",
	Usage:  "walk through inserts, finds, and deletes, printing the tree as it reshapes",
	Action: runSplayDemo,
}

func runSplayDemo(cctx *cli.Context) error {
	tr := splaytree.New[int, string]()

	fmt.Println("inserting (5,a) (3,b) (8,c) (1,d); every insert splays the new key to the root")
	for _, e := range []struct {
		key int
		val string
	}{{5, "a"}, {3, "b"}, {8, "c"}, {1, "d"}} {
		tr.Insert(e.key, e.val)
	}
	fmt.Print(tr.Dump())

	fmt.Println("find(8) moves 8 to the root")
	if v, ok := tr.Find(8); ok {
		fmt.Printf("found 8 -> %s\n", v)
	}
	fmt.Print(tr.Dump())

	fmt.Println("find(4) misses; the last node on the search path is splayed instead")
	if _, ok := tr.Find(4); !ok {
		fmt.Println("4 not present")
	}
	fmt.Print(tr.Dump())

	fmt.Println("delete(8)")
	tr.Delete(8)
	fmt.Print(tr.Dump())

	fmt.Print("in order:")
	for k, v := range tr.InOrder() {
		fmt.Printf(" (%d,%s)", k, v)
	}
	fmt.Println()

	if k, v, ok := tr.Min(); ok {
		fmt.Printf("min: %d -> %s\n", k, v)
	}
	if k, v, ok := tr.Max(); ok {
		fmt.Printf("max: %d -> %s\n", k, v)
	}
	fmt.Printf("len: %d, height: %d\n", tr.Len(), tr.Height())
	return nil
}

var cmdSplayPrint = &cli.Command{
	Name:  "print",
	Usage: "build a tree from the given keys and print its shape",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "keys",
			Usage: "keys to insert, in order",
			Value: cli.NewIntSlice(10, 5, 15, 3, 7, 12, 17),
		},
		&cli.IntFlag{
			Name:  "find",
			Usage: "key to look up after building, to show the splay",
		},
	},
	Action: runSplayPrint,
}

func runSplayPrint(cctx *cli.Context) error {
	tr := splaytree.New[int, string]()
	for _, k := range cctx.IntSlice("keys") {
		tr.Insert(k, gofakeit.Word())
	}
	fmt.Print(tr.Dump())

	if cctx.IsSet("find") {
		key := cctx.Int("find")
		if v, ok := tr.Find(key); ok {
			fmt.Printf("find(%d) = %s; splayed to the root:\n", key, v)
		} else {
			fmt.Printf("find(%d) missed; last visited key splayed to the root:\n", key)
		}
		fmt.Print(tr.Dump())
	}
	return nil
}
