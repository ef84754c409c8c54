// Package services implements the driving port interfaces.
// Services contain the core orchestration and call out to driven ports
// (extractors, stores) for everything that touches the outside world.
//
// Services are pure Go with no CGO.
package services
