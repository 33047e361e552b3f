// Command herbarium builds and describes validated plant records.
package main

import "github.com/mesh-intelligence/herbarium/internal/cli"

func main() {
	cli.Execute()
}
