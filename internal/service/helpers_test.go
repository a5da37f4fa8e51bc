package service

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// decimalMatcher сравнивает decimal по значению: reflect.DeepEqual различает 10 и 10.00.
type decimalMatcher struct {
	want decimal.Decimal
}

func decimalEq(value string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(value)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is decimal equal to %s", m.want)
}
