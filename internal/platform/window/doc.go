// Package window hosts the game in a desktop window with Ebitengine.
//
// The frontend is only compiled with the ebiten build tag:
//
//	go build -tags ebiten ./cmd/crossing
//
// Without the tag the package is empty and the CLI offers the terminal frontend only.
package window

// Name is the registry name of the window frontend.
const Name = "window"
