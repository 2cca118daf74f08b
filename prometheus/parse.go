package prometheus

import (
	"errors"

	parser "github.com/prometheus/prometheus/promql/parser"
)

var ErrUnsupportedNode = errors.New("promql: not all node types covered")

// ValidateExpr reports whether query is a well formed PromQL expression.
func ValidateExpr(query string) error {
	_, err := parser.ParseExpr(query)
	return err
}

// MetricNames returns a map (set of keys) of unique metric names included in PromQL query string
func MetricNames(query string) (map[string]bool, error) {
	expr, err := parser.ParseExpr(query)
	if err != nil {
		return nil, err
	}

	m := make(map[string]bool)
	if err := metricNames(m, expr); err != nil {
		return nil, err
	}
	return m, nil
}

func metricNames(m map[string]bool, node parser.Node) error {
	switch n := node.(type) {
	case *parser.EvalStmt:
		return metricNames(m, n.Expr)
	case parser.Expressions:
		for _, e := range n {
			if err := metricNames(m, e); err != nil {
				return err
			}
		}
	case *parser.AggregateExpr:
		return metricNames(m, n.Expr)
	case *parser.SubqueryExpr:
		return metricNames(m, n.Expr)
	case *parser.BinaryExpr:
		if err := metricNames(m, n.LHS); err != nil {
			return err
		}
		return metricNames(m, n.RHS)
	case *parser.Call:
		return metricNames(m, n.Args)
	case *parser.ParenExpr:
		return metricNames(m, n.Expr)
	case *parser.UnaryExpr:
		return metricNames(m, n.Expr)
	case *parser.VectorSelector:
		m[n.Name] = true
	case *parser.MatrixSelector:
		return metricNames(m, n.VectorSelector)
	case *parser.NumberLiteral, *parser.StringLiteral:
	default:
		return ErrUnsupportedNode
	}
	return nil
}
