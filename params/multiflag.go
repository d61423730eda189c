package params

import (
	"flag"
	"fmt"
	"strings"
)

type multiValue struct {
	name   string
	values []string
	seen   map[string]struct{}
}

func (f *multiValue) String() string { return strings.Join(f.values, ",") }

func (f *multiValue) Set(s string) error {
	if _, ok := f.seen[s]; ok {
		return fmt.Errorf("duplicated value %v of parameter %v", s, f.name)
	}
	f.values = append(f.values, s)
	f.seen[s] = struct{}{}
	return nil
}

func (f *multiValue) Get() interface{} { return f.values }

// MultiVal registers a repeatable flag with duplicate control.
func MultiVal(flagSet *flag.FlagSet, name string, defValues []string, usage string) *[]string {
	v := &multiValue{name: name, seen: map[string]struct{}{}}
	for _, d := range defValues {
		if err := v.Set(d); err != nil {
			panic(err)
		}
	}
	flagSet.Var(v, name, usage)
	return &v.values
}
