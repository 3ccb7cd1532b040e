package cli

import (
	"fmt"

	"github.com/joeycumines/go-rangesum"
)

// query is a single sum request, either "N" or "M N".
type query struct {
	args []string
}

func parseQuery(fields []string) (query, error) {
	if len(fields) < 1 || len(fields) > 2 {
		return query{}, fmt.Errorf(`expected "N" or "M N", got %d fields`, len(fields))
	}
	return query{args: fields}, nil
}

// eval parses and evaluates the query, any error will be a
// *rangesum.PreconditionError.
func (x query) eval(summer *rangesum.Summer) (*rangesum.Result, error) {
	if len(x.args) == 1 {
		n, err := rangesum.ParseNatural(x.args[0])
		if err != nil {
			return nil, err
		}
		return summer.SumTo(n)
	}
	r, err := rangesum.ParseRange(x.args[0], x.args[1])
	if err != nil {
		return nil, err
	}
	return summer.Sum(r.Lo, r.Hi)
}
