package touchui_test

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestBuildDemo compiles the demo program, which exercises the public API
// of every package including the simulator.
func TestBuildDemo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping demo build in short mode")
	}
	outbuf := &bytes.Buffer{}
	cmd := exec.Command("go", "build", "-o="+t.TempDir()+"/demo", "./testdata/demo.go")
	cmd.Stderr = outbuf
	cmd.Stdout = outbuf
	if err := cmd.Run(); err != nil {
		t.Errorf("failed to compile the demo: %s\n%s", err, outbuf.String())
	}
}

// Widgets have to adhere to a uniform API: every widget struct is anchored
// at CenterX/CenterY and has a matching Draw method on UI. This parses the
// package source so a new widget can't quietly deviate.
func TestWidgetAPI(t *testing.T) {
	fset := token.NewFileSet()
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	widgets := map[string]token.Position{}
	drawMethods := map[string]bool{}
	for _, filename := range files {
		if strings.HasSuffix(filename, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filename, nil, parser.SkipObjectResolution)
		if err != nil {
			t.Fatalf("could not parse %s: %v", filename, err)
		}
		for _, decl := range f.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				if decl.Recv != nil && strings.HasPrefix(decl.Name.Name, "Draw") {
					drawMethods[decl.Name.Name] = true
				}
			case *ast.GenDecl:
				if decl.Tok != token.TYPE {
					continue
				}
				for _, spec := range decl.Specs {
					spec, ok := spec.(*ast.TypeSpec)
					if !ok || !spec.Name.IsExported() {
						continue
					}
					st, ok := spec.Type.(*ast.StructType)
					if !ok {
						continue
					}
					for _, field := range st.Fields.List {
						for _, name := range field.Names {
							if name.Name == "CenterX" {
								widgets[spec.Name.Name] = fset.Position(spec.Pos())
							}
						}
					}
				}
			}
		}
	}

	if len(widgets) == 0 {
		t.Fatal("no widget structs found")
	}
	for name, pos := range widgets {
		if !drawMethods["Draw"+name] {
			t.Errorf("%s: widget %s has no Draw%s method", pos, name, name)
		}
	}
}
