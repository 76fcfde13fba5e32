// Command efprocs prints a procedure table for every function in the given
// packages that can serve as an Efecta procedure body.
//
// Usage:
//
//	efprocs [-match re] [-ignore re] packages...
//
// Each function assignable to efecta.Fn whose name matches -match and not
// -ignore produces one line of a Procs literal. The procedure name is the
// part of the function name after the match, in upper case, so that
//
//	efprocs -match ^Math github.com/zephyrtronium/efecta/internal
//
// prints lines such as
//
//	"ADD": MathAdd,
//
// The lines are meant to be pasted into an init method's Procs literal when
// adding a group of procedures. Nothing runs efprocs during a build.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore string
	var efecta string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&efecta, "efecta", "github.com/zephyrtronium/efecta", "import path for package efecta source code")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedTypes | packages.NeedSyntax | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{efecta}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	fn, pkgs := getFn(pkgs)
	results := []string{}
	for _, pkg := range pkgs {
		results = append(results, find(pkg.Types.Scope(), fn, mre, ire)...)
	}
	sort.Strings(results)
	for _, name := range results {
		fmt.Printf("\t\t%q: %s,\n", procName(name, mre), name)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// getFn finds the underlying type of Fn in the first package and returns it
// along with the remaining packages.
func getFn(pkgs []*packages.Package) (types.Type, []*packages.Package) {
	if len(pkgs) < 2 {
		fail("no packages to search")
	}
	pkg := pkgs[0].Types
	r := pkg.Scope().Lookup("Fn")
	if r == nil {
		fail(pkg.Name(), "has no definition of Fn")
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		fail(pkg.Name(), "has incorrect definition of Fn:", r)
	}
	return t.Type().Underlying(), pkgs[1:]
}

// find lists the functions in a scope that are assignable to fn.
func find(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		obj, ok := scope.Lookup(name).(*types.Func)
		if ok && types.AssignableTo(obj.Type(), fn) {
			r = append(r, name)
		}
	}
	return r
}

// procName derives a procedure name from a function name by removing the
// matched prefix and converting to upper case.
func procName(name string, mre *regexp.Regexp) string {
	if mre.String() != "." {
		k := mre.FindStringIndex(name)
		name = name[k[1]:]
	}
	return strings.ToUpper(name)
}
