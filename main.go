// Public domain.

package main

import "github.com/frbhosts/hostgal/internal/hostprog"

func main() {
	hostprog.Main()
}
