package srte

import "fmt"

func ExamplePathFromNodes() {
	p := PathFromNodes("a", "b", "c")

	fmt.Println(p)
	fmt.Println(p.Len())

	// Output:
	// a -> b -> c
	// 2
}

func ExamplePath_Nodes() {
	p := Path{{"br1", "r1"}, {"r1", "r2"}, {"r2", "br2"}}

	fmt.Println(p.Nodes())
	fmt.Println(p.Source(), p.Destination())

	// Output:
	// [br1 r1 r2 br2]
	// br1 br2
}

func ExamplePath_SharesEdge() {
	p1 := PathFromNodes("a", "b", "c")
	p2 := PathFromNodes("a", "d", "c")
	p3 := PathFromNodes("a", "b", "d", "c")

	fmt.Println(p1.SharesEdge(p2)) // disjoint
	fmt.Println(p1.SharesEdge(p3)) // both use a -> b
	fmt.Println(p1.SharesEdge(Path{}))

	// Output:
	// false
	// true
	// false
}

func ExamplePath_Equal() {
	p := PathFromNodes("a", "b", "c")

	fmt.Println(p.Equal(PathFromNodes("a", "b", "c")))
	fmt.Println(p.Equal(PathFromNodes("a", "c")))

	// Output:
	// true
	// false
}
