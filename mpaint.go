// Public domain.

package main

import "github.com/mpaint/mpaint/internal/prog"

func main() {
	prog.Main()
}
