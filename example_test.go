package caseless_test

import (
	"fmt"
	"strings"

	"github.com/npillmayer/caseless"
)

func ExampleFoldString() {
	fmt.Println(caseless.FoldString("Straße"))
	// Output: strasse
}

func ExampleMatchString() {
	fmt.Println(caseless.MatchString("Test Case", "TEST CASE"))
	fmt.Println(caseless.MatchString("Å", "Å")) // no normalization
	// Output: true
	// false
}

func ExampleCanonicalMatchString() {
	fmt.Println(caseless.CanonicalMatchString("Å", "Å"))
	// Output: true
}

func ExampleCompatibilityMatchString() {
	fmt.Println(caseless.CompatibilityMatchString("㎒", "MHz"))
	// Output: true
}

func ExampleMatch() {
	a := strings.NewReader("The Quick Brown Fox")
	b := strings.NewReader("THE QUICK BROWN FOX")
	fmt.Println(caseless.Match(a, b))
	// Output: true
}

func ExampleHasPrefixString() {
	fmt.Println(caseless.HasPrefixString("Test Case", "test"))
	fmt.Println(caseless.HasPrefixString("Test Case", "case"))
	// Output: true
	// false
}
