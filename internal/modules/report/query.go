package report

import (
	"strconv"
	"strings"
)

// salesQuery builds the shared FROM/WHERE part of the filtered report with
// numbered placeholders.
type salesQuery struct {
	where strings.Builder
	args  []interface{}
}

func newSalesQuery(f Filter) *salesQuery {
	q := &salesQuery{}
	q.where.WriteString(`
		FROM ventas v
		JOIN productos p ON v.producto_id = p.id
		WHERE 1=1`)
	if f.Seller != "" {
		q.and("v.usuario = ", f.Seller)
	}
	if f.From != "" {
		q.and("DATE(v.fecha) >= ", f.From)
	}
	if f.To != "" {
		q.and("DATE(v.fecha) <= ", f.To)
	}
	return q
}

func (q *salesQuery) and(cond string, arg interface{}) {
	q.args = append(q.args, arg)
	q.where.WriteString(" AND " + cond + q.placeholder(len(q.args)))
}

func (q *salesQuery) placeholder(n int) string { return "$" + strconv.Itoa(n) }

// page returns the args for a LIMIT/OFFSET appended after the filter args.
func (q *salesQuery) page(limit, offset int) (string, []interface{}) {
	n := len(q.args)
	clause := " LIMIT " + q.placeholder(n+1) + " OFFSET " + q.placeholder(n+2)
	args := append(append([]interface{}{}, q.args...), limit, offset)
	return clause, args
}
