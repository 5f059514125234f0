// Command pokerbench is a small CLI around package pokercore: parse cards,
// rank a hand under any variant, and report how long the package's tables
// took to build. It is a consumer of the core, not part of it (spec.md §1
// excludes example programs from the core's scope).
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
