package injector

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"runtime"
)

// Annotate reports the declared parameter names of fn, in declaration
// order.
//
// AngularJS reads them from the function's source text
// ($injector.annotate); Go reflection does not record parameter names, so
// this locates the function's source file via runtime.FuncForPC and
// parses it with go/parser instead.
//
// The same hazard as the JS original applies: annotation only works while
// the source file that built the binary is still readable at its recorded
// path. Binaries built with -trimpath, or running away from their source
// tree, cannot be annotated — use the explicit []any{"dep", ..., fn} form
// anywhere that matters.
func Annotate(fn any) ([]string, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("injector: annotate: got %T, want a function", fn)
	}

	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return nil, fmt.Errorf("injector: annotate: no runtime information for function")
	}
	file, line := rf.FileLine(rf.Entry())

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("injector: annotate: cannot read source of %s: %w", rf.Name(), err)
	}

	ft := funcTypeAt(fset, parsed, line)
	if ft == nil {
		return nil, fmt.Errorf("injector: annotate: no function found at %s:%d", file, line)
	}

	var names []string
	for _, field := range ft.Params.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("injector: annotate: %s has an unnamed parameter", rf.Name())
		}
		for _, ident := range field.Names {
			if ident.Name == "_" {
				return nil, fmt.Errorf("injector: annotate: %s has a blank parameter", rf.Name())
			}
			names = append(names, ident.Name)
		}
	}
	return names, nil
}

// funcTypeAt finds the innermost function declaration or literal whose
// source span covers the given line.
func funcTypeAt(fset *token.FileSet, file *ast.File, line int) *ast.FuncType {
	var found *ast.FuncType
	innermost := 0
	ast.Inspect(file, func(n ast.Node) bool {
		var ft *ast.FuncType
		switch node := n.(type) {
		case *ast.FuncDecl:
			ft = node.Type
		case *ast.FuncLit:
			ft = node.Type
		default:
			return true
		}
		start := fset.Position(n.Pos()).Line
		end := fset.Position(n.End()).Line
		if start <= line && line <= end && start >= innermost {
			found, innermost = ft, start
		}
		return true
	})
	return found
}
