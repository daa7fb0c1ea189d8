package repositories

import "strings"

// FilterSet is an ordered conjunction of SQL predicates with bound args.
// Predicates are fixed templates; user input only ever travels through Args.
type FilterSet struct {
	Where []string
	Args  []any
}

func (f *FilterSet) Add(cond string, args ...any) {
	f.Where = append(f.Where, cond)
	f.Args = append(f.Args, args...)
}

func (f FilterSet) Clause() string {
	if len(f.Where) == 0 {
		return "1=1"
	}
	return strings.Join(f.Where, " AND ")
}
