package network_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tanroute/network"
)

// ExampleBuilder assembles a two-station network with a one-way route.
func ExampleBuilder() {
	b := network.NewBuilder()
	_ = b.AddStation("ABDU", "Abel Durand", 47.22019661, -1.60337553)
	_ = b.AddStation("ABLA", "Avenue Blanche", 47.22973509, -1.58937990)
	_ = b.AddRoute("ABDU", "ABLA")

	n, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Len(), "stations,", n.RouteCount(), "route")
	// Output: 2 stations, 1 route
}

// ExampleBuilder_unknownStation shows that a dangling route aborts assembly.
func ExampleBuilder_unknownStation() {
	b := network.NewBuilder()
	_ = b.AddStation("ABDU", "Abel Durand", 47.22019661, -1.60337553)
	_ = b.AddRoute("ABDU", "ZZZZ")

	_, err := b.Build()
	fmt.Println(errors.Is(err, network.ErrUnknownStation))
	// Output: true
}
