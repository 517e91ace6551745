package layout

// Walk calls fn for every value in depth-first order.
func Walk(values []Value, fn func(depth int, v Value)) {
	walk(values, 0, fn)
}

func walk(values []Value, depth int, fn func(int, Value)) {
	for _, v := range values {
		fn(depth, v)
		walk(v.Children, depth+1, fn)
	}
}

// Flatten returns every value with its depth in Walk order.
func Flatten(values []Value) []Row {
	var rows []Row
	Walk(values, func(depth int, v Value) {
		rows = append(rows, Row{Value: v, Depth: depth})
	})
	return rows
}

// Row is a value with its nesting depth.
type Row struct {
	Value
	Depth int
}
