package svmlight_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/svmio/svmlight"
)

// ExampleLoadString parses a tiny corpus and reports its shape.
func ExampleLoadString() {
	ds, err := svmlight.LoadString("+1 1:0.5 4:2\n-1 2:1\n")
	if err != nil {
		fmt.Println(err)

		return
	}
	rows, cols := ds.Dims()
	fmt.Println(rows, cols)
	fmt.Println(ds.Labels())
	// Output:
	// 2 5
	// [1 -1]
}

// ExampleLoadString_comments captures trailing comments per row.
func ExampleLoadString_comments() {
	ds, _ := svmlight.LoadString("1 1:1 # first sample\n2 2:2\n", svmlight.WithComments())
	fmt.Printf("%q\n", ds.Comments())
	// Output:
	// ["first sample" ""]
}

// ExampleDump writes a dataset back out with the one-based convention of
// the original svmlight tooling.
func ExampleDump() {
	ds, _ := svmlight.LoadString("1 0:0.5\n")
	_ = svmlight.Dump(os.Stdout, ds, svmlight.WithZeroBased(false))
	// Output:
	// 1 1:0.5
}
