package redact_test

import (
	"fmt"

	"github.com/dshills/censor/internal/redact"
)

func ExampleRedact() {
	fmt.Println(redact.Redact("The category of this cat is BAD.", []string{"cat", "bad"}))
	// Output: The category of this *** is ***.
}

func ExampleRedactor_Apply() {
	r, err := redact.New([]string{"ruim", "ruinzinho"})
	if err != nil {
		panic(err)
	}
	res, err := r.Apply("ruim e ruinzinho")
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Text, res.Count())
	// Output: **** e ********* 2
}
