package corpus

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/parser"
)

// extractJavaScript parses source with go-fAST and collects the names of
// declared functions, classes, methods, fields and variables. Parsing
// whole files beats the regex fallback because it skips string literals
// and comments entirely.
func extractJavaScript(content string) ([]string, error) {
	program, err := parser.ParseFile(content)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, stmt := range program.Body {
		names = collectStatement(stmt.Stmt, names)
	}
	return names, nil
}

func collectStatement(stmt ast.Stmt, names []string) []string {
	if stmt == nil {
		return names
	}

	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		if s.Function != nil && s.Function.Name != nil {
			names = append(names, s.Function.Name.Name)
			if s.Function.Body != nil {
				for _, body := range s.Function.Body.List {
					names = collectStatement(body.Stmt, names)
				}
			}
		}

	case *ast.ClassDeclaration:
		if s.Class != nil && s.Class.Name != nil {
			names = append(names, s.Class.Name.Name)
			for _, element := range s.Class.Body {
				names = collectClassElement(element.Element, names)
			}
		}

	case *ast.VariableDeclaration:
		for _, decl := range s.List {
			if decl.Target == nil || decl.Target.Target == nil {
				continue
			}
			if name := bindingName(decl.Target.Target); name != "" {
				names = append(names, name)
			}
		}

	case *ast.BlockStatement:
		for _, body := range s.List {
			names = collectStatement(body.Stmt, names)
		}
	}

	return names
}

func collectClassElement(element ast.Element, names []string) []string {
	switch e := element.(type) {
	case *ast.MethodDefinition:
		if e.Key != nil && e.Key.Expr != nil {
			if name := expressionName(e.Key.Expr); name != "" {
				names = append(names, name)
			}
		}
	case *ast.FieldDefinition:
		if e.Key != nil && e.Key.Expr != nil {
			if name := expressionName(e.Key.Expr); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func bindingName(target ast.Target) string {
	if ident, ok := target.(*ast.Identifier); ok {
		return ident.Name
	}
	return ""
}

func expressionName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.StringLiteral:
		return e.Value
	}
	return ""
}
