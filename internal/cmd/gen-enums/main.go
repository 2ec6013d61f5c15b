// gen-enums writes the enum arity files for the root package. Each arity
// gets a wrapper struct, per-arm constructors and setters, capability
// flavors, and forwarding methods, differing only in arm count.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const (
	minArity = 2
	maxArity = 6
	letters  = "ABCDEF"
)

func main() {
	dir := flag.String("dir", ".", "directory to write the enum files to")
	flag.Parse()
	for n := minArity; n <= maxArity; n++ {
		name := fmt.Sprintf("enum%v.go", n)
		src, err := format.Source(genArity(n))
		if err != nil {
			log.Fatalf("formatting %v: %v", name, err)
		}
		err = os.WriteFile(filepath.Join(*dir, name), src, 0o644)
		if err != nil {
			log.Fatal(err)
		}
	}
}

type flavor struct {
	prefix     string
	constraint string
	doc        string
	back       bool
	exact      bool
}

var flavors = []flavor{
	{"Back", "DoubleEnded", "double-ended", true, false},
	{"Exact", "ExactSize", "exactly sized", false, true},
	{"Full", "Full", "double-ended and exactly sized", true, true},
}

func genArity(n int) []byte {
	var w bytes.Buffer
	p := func(f string, args ...any) {
		fmt.Fprintf(&w, f+"\n", args...)
	}
	arms := strings.Split(letters[:n], "")
	list := strings.Join(arms, ", ")
	// Type parameter declaration for a given arm constraint, and the
	// matching argument list for uses of the instantiated types.
	params := func(constraint string) string {
		return fmt.Sprintf("V any, %v %v[V]", list, constraint)
	}
	args := "V, " + list
	base := fmt.Sprintf("Enum%v", n)
	armSwitch := func(call string) {
		p("\tswitch me.arm {")
		for _, a := range arms {
			p("\tcase Arm%v:", a)
			p("\t\treturn me.%v%v", strings.ToLower(a), call)
		}
		p("\t}")
		p("\tpanic(me.arm)")
	}

	p("// Code generated by gen-enums. DO NOT EDIT.")
	p("")
	p("package iterenum")
	p("")
	p("import (")
	p("\t\"fmt\"")
	p("\t\"iter\"")
	p("")
	p("\tg \"github.com/anacrolix/generics\"")
	p(")")
	p("")
	p("// %v holds exactly one of %v iterators producing V. The active arm is", base, n)
	p("// set at construction and only changes via the Set methods. The zero value")
	p("// holds arm A's zero source.")
	p("type %v[%v] struct {", base, params("Iterator"))
	p("\tarm Arm")
	for _, a := range arms {
		p("\t%v %v", strings.ToLower(a), a)
	}
	p("}")
	for i, a := range arms {
		others := strings.Join(append(append([]string{}, arms[:i]...), arms[i+1:]...), ", ")
		p("")
		p("// %v%v returns an %v holding %v in arm %v.", base, a, base, strings.ToLower(a), a)
		p("func %v%v[V any, %v Iterator[V], %v Iterator[V]](%v %v) *%v[%v] {",
			base, a, others, a, strings.ToLower(a), a, base, args)
		p("\treturn &%v[%v]{arm: Arm%v, %v: %v}", base, args, a, strings.ToLower(a), strings.ToLower(a))
		p("}")
	}
	for _, a := range arms {
		p("")
		p("// Set%v points the enum at arm %v, dropping whatever it held.", a, a)
		p("func (me *%v[%v]) Set%v(%v %v) {", base, args, a, strings.ToLower(a), a)
		p("\t*me = %v[%v]{arm: Arm%v, %v: %v}", base, args, a, strings.ToLower(a), strings.ToLower(a))
		p("}")
	}
	p("")
	p("// Arm reports which arm is active.")
	p("func (me *%v[%v]) Arm() Arm {", base, args)
	p("\treturn me.arm")
	p("}")
	p("")
	p("func (me *%v[%v]) String() string {", base, args)
	p("\tswitch me.arm {")
	for _, a := range arms {
		p("\tcase Arm%v:", a)
		p("\t\treturn fmt.Sprintf(\"%%v(%%v)\", me.arm, me.%v)", strings.ToLower(a))
	}
	p("\t}")
	p("\tpanic(me.arm)")
	p("}")
	p("")
	p("func (me *%v[%v]) Next() (_ V, ok bool) {", base, args)
	armSwitch(".Next()")
	p("}")
	p("")
	p("func (me *%v[%v]) SizeHint() (lower int, upper g.Option[int]) {", base, args)
	armSwitch(".SizeHint()")
	p("}")
	p("")
	p("// Seq adapts the enum to a standard push iterator.")
	p("func (me *%v[%v]) Seq() iter.Seq[V] {", base, args)
	p("\treturn ToSeq[V](me)")
	p("}")
	p("")
	p("// Collect exhausts the enum into a new slice.")
	p("func (me *%v[%v]) Collect() []V {", base, args)
	p("\treturn Collect[V](me)")
	p("}")
	p("")
	p("// Count exhausts the enum and reports how many elements it produced.")
	p("func (me *%v[%v]) Count() int {", base, args)
	p("\treturn Count[V](me)")
	p("}")
	for _, f := range flavors {
		name := f.prefix + base
		p("")
		p("// %v is an %v over arms that are all %v.", name, base, f.doc)
		p("type %v[%v] struct {", name, params(f.constraint))
		p("\t%v[%v]", base, args)
		p("}")
		p("")
		p("// %v%v upgrades e, compiling only when every arm is %v.", f.prefix, n, f.doc)
		p("func %v%v[%v](e *%v[%v]) *%v[%v] {", f.prefix, n, params(f.constraint), base, args, name, args)
		p("\treturn &%v[%v]{*e}", name, args)
		p("}")
		if f.back {
			p("")
			p("func (me *%v[%v]) NextBack() (_ V, ok bool) {", name, args)
			armSwitch(".NextBack()")
			p("}")
			p("")
			p("// BackSeq adapts the enum to a standard push iterator over its tail end.")
			p("func (me *%v[%v]) BackSeq() iter.Seq[V] {", name, args)
			p("\treturn BackSeq[V](me)")
			p("}")
		}
		if f.exact {
			p("")
			p("// Len reports how many elements remain in the active arm.")
			p("func (me *%v[%v]) Len() int {", name, args)
			armSwitch(".Len()")
			p("}")
		}
	}
	ifaceArgs := func(c string) string {
		return "any, " + strings.TrimSuffix(strings.Repeat(c+"[any], ", n), ", ")
	}
	p("")
	p("var (")
	p("\t_ Iterator[any]    = (*%v[%v])(nil)", base, ifaceArgs("Iterator"))
	p("\t_ DoubleEnded[any] = (*Back%v[%v])(nil)", base, ifaceArgs("DoubleEnded"))
	p("\t_ ExactSize[any]   = (*Exact%v[%v])(nil)", base, ifaceArgs("ExactSize"))
	p("\t_ Full[any]        = (*Full%v[%v])(nil)", base, ifaceArgs("Full"))
	p(")")
	return w.Bytes()
}
