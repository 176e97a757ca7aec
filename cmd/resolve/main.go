package main

import (
	"fmt"
	"os"

	"github.com/evmkit/chain-resolver/pkg/chainid"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <chain name or id> [...]\n", os.Args[0])
		os.Exit(2)
	}

	exitCode := 0
	for _, arg := range os.Args[1:] {
		id, err := chainid.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			exitCode = 1
			continue
		}

		fmt.Printf("%s:\n", arg)
		fmt.Printf("  name:     %s\n", id)
		fmt.Printf("  chain id: %d\n", id.ID())
		fmt.Printf("  named:    %t\n", id.IsNamed())
		fmt.Printf("  legacy:   %t\n", id.IsLegacy())
		if base, api, ok := id.ExplorerURLs(); ok {
			fmt.Printf("  explorer: %s (api: %s)\n", base, api)
		}
	}
	os.Exit(exitCode)
}
