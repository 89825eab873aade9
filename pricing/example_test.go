package pricing_test

import (
	"fmt"
	"time"

	"github.com/contactkeval/fx-pricer/pricing"
)

func ExamplePrice() {
	expiry := time.Date(2019, time.July, 1, 0, 0, 0, 0, time.UTC)
	spotDate := time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC)

	call := pricing.Price(true, 152, expiry, spotDate, 150, 0.13, 0.03, 0.04)
	put := pricing.Price(false, 152, expiry, spotDate, 150, 0.13, 0.03, 0.04)

	fmt.Printf("call %.10f\n", call)
	fmt.Printf("put  %.10f\n", put)
	// Output:
	// call 2.8110445343
	// put  5.1668650332
}

func ExampleD1() {
	d1 := pricing.D1(152, 91.0/365, 150, 0.13, 0.03, 0.04)
	d2 := pricing.D2(91.0/365, 0.13, d1)

	fmt.Printf("d1 %.10f\n", d1)
	fmt.Printf("d2 %.10f\n", d2)
	// Output:
	// d1 -0.2100058012
	// d2 -0.2749166990
}

func ExampleDiscount() {
	fmt.Printf("%.10f\n", pricing.Discount(0.03, 2.1))
	// Output: 0.9389434737
}
