package rangesum_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/joeycumines/go-rangesum"
)

func ExampleSumFrom1ToN() {
	p := func(n any) {
		v, err := rangesum.SumFrom1ToN(n)
		if err != nil {
			fmt.Println(errors.Is(err, rangesum.ErrPreconditionViolation), err)
			return
		}
		fmt.Println(v)
	}

	n, _ := new(big.Int).SetString(`100000000000000000001`, 10)

	p(0)
	p(1)
	p(1000)
	p(n)
	p(-1)
	p(2.5)

	//output:
	//0
	//1
	//500500
	//5000000000000000000150000000000000000001
	//true rangesum: precondition violation: n: negative value: -1 (int)
	//true rangesum: precondition violation: n: not an exact integer: 2.5 (float64)
}

func ExampleSumFromMToN() {
	fmt.Println(rangesum.MustSumFromMToN(3, 5))
	fmt.Println(rangesum.MustSumFromMToN(5, 3))
	fmt.Println(rangesum.MustSumFromMToN(5, 5))
	fmt.Println(rangesum.MustSumFromMToN(0, 10))

	//output:
	//12
	//12
	//5
	//55
}

func ExampleSummer_Sum() {
	summer, err := rangesum.New(rangesum.WithStrategy(rangesum.StrategyExactBound))
	if err != nil {
		panic(err)
	}

	for _, n := range [...]int64{94906264, 94906265} {
		result, err := summer.Sum(0, n)
		if err != nil {
			panic(err)
		}
		b, err := json.Marshal(result)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s\n", b)
	}

	//output:
	//{"lo":"0","hi":"94906264","sum":"4503599520671980","rational":false,"strategy":"exact-bound"}
	//{"lo":"0","hi":"94906265","sum":"4503599615578245","rational":true,"strategy":"exact-bound"}
}
