// Command bellmanford runs the shortest-path engine on the reference graph
// and prints the distances, or the negative-cycle witness.
package main

import "github.com/katalvlaran/bfpath/internal/cli"

func main() {
	cli.Execute()
}
