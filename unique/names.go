// Package unique hands out collision-free identifier names for generated
// code: receiver, argument and resolution variables.
package unique

import (
	"strconv"

	"github.com/m4gshm/gollections/collection/mutable"
)

func NewNames(reserved ...string) *Names {
	u := &Names{uniques: mutable.NewSet[string]()}
	for _, r := range reserved {
		u.Add(r)
	}
	return u
}

type Names struct {
	uniques *mutable.Set[string]
}

// Get returns varName, or a numbered variant when the name is already taken,
// and records the result.
func (u *Names) Get(varName string) string {
	name := varName
	for i := 1; !u.uniques.AddNew(name); i++ {
		name = varName + strconv.Itoa(i)
	}
	return name
}

func (u *Names) Add(varName string) {
	u.Get(varName)
}
