package negotiate_test

import (
	"fmt"

	"github.com/trpc-ecosystem/negotiate"
)

func Example() {
	m, err := negotiate.New([]string{
		"application/json",
		"application/graphql-response+json",
		"text/html",
	})
	if err != nil {
		panic(err)
	}

	header := "text/html;q=0.9, application/json;q=0.8"
	chosen, ok := m.Select(&header)
	if !ok {
		fmt.Println("406 Not Acceptable")
		return
	}
	fmt.Println(chosen)
	// Output: text/html
}
