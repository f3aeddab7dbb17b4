package wordcodec_test

import (
	"fmt"

	"github.com/katalvlaran/lexpath/wordcodec"
)

// ExampleEncode shows the round trip between a string and its packed Word.
func ExampleEncode() {
	w, err := wordcodec.Encode("abc")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(w.Len(), w)
	// Output:
	// 3 abc
}

// ExampleWord_Rotate prints both single-step rotations of a word.
func ExampleWord_Rotate() {
	r := wordcodec.MustEncode("abc").Rotate()
	fmt.Println(r[0], r[1])
	// Output:
	// bca cab
}

// ExampleWord_Shifts walks the per-letter neighbors of a two-letter word.
// Slots 0..5 shift a letter up the alphabet, slots 6..11 shift it down;
// slots beyond the word's length stay empty.
func ExampleWord_Shifts() {
	for i, s := range wordcodec.MustEncode("bc").Shifts() {
		if s != 0 {
			fmt.Println(i, s)
		}
	}
	// Output:
	// 0 cc
	// 1 bd
	// 6 ac
	// 7 bb
}

// ExampleWord_Neighbors enumerates everything one edit away from "ab".
func ExampleWord_Neighbors() {
	for _, n := range wordcodec.MustEncode("ab").Neighbors(3) {
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output:
	// aab a bb ac zb aa ba ba
}
