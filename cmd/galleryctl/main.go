// Command galleryctl moderates artworks and exports email submissions
// directly against the gallery database.
package main

import "os"

func main() {
	if err := newRootCmd(openApp).Execute(); err != nil {
		os.Exit(1)
	}
}
