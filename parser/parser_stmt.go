package parser

import "mython/types"

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case CLASS:
		p.advance()
		return p.parseClassDefinition()
	case IF:
		return p.parseCondition()
	}

	stmt, err := p.parseSimpleStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expect(NEWLINE, "newline"); err != nil {
		return nil, err
	}
	p.advance()
	return stmt, nil
}

func (p *Parser) parseSimpleStatement() (Stmt, error) {
	pos := p.current.Pos
	switch p.current.Type {
	case RETURN:
		p.advance()
		value, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{Pos: pos, Value: value}, nil
	case PRINT:
		p.advance()
		var args []Expr
		if p.current.Type != NEWLINE {
			list, err := p.parseTestList()
			if err != nil {
				return nil, err
			}
			args = list
		}
		return &PrintStmt{Pos: pos, Args: args}, nil
	}
	return p.parseAssignmentOrCall()
}

// parseDottedIds parses a dotted identifier chain: id(.id)*.
func (p *Parser) parseDottedIds() ([]string, error) {
	if err := p.expect(ID, "identifier"); err != nil {
		return nil, err
	}
	names := []string{p.current.Text}
	p.advance()
	for p.current.Type == CHAR && p.current.Char == '.' {
		p.advance()
		if err := p.expect(ID, "identifier"); err != nil {
			return nil, err
		}
		names = append(names, p.current.Text)
		p.advance()
	}
	return names, nil
}

// parseAssignmentOrCall disambiguates `a.b.c = expr`, `a.b.c(args)` and a
// bare `name(args)` call, all of which begin with a dotted identifier.
func (p *Parser) parseAssignmentOrCall() (Stmt, error) {
	pos := p.current.Pos
	if err := p.expect(ID, "identifier"); err != nil {
		return nil, err
	}

	names, err := p.parseDottedIds()
	if err != nil {
		return nil, err
	}
	lastName := names[len(names)-1]
	prefix := names[:len(names)-1]

	if p.current.Type == CHAR && p.current.Char == '=' {
		p.advance()
		value, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if len(prefix) == 0 {
			return &Assignment{Pos: pos, Name: lastName, Value: value}, nil
		}
		return &FieldAssignment{Pos: pos, Names: names, Value: value}, nil
	}

	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	p.advance()

	if len(prefix) == 0 {
		return nil, p.fail("Mython doesn't support functions, only methods: %s", lastName)
	}

	var args []Expr
	if !(p.current.Type == CHAR && p.current.Char == ')') {
		list, err := p.parseTestList()
		if err != nil {
			return nil, err
		}
		args = list
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	p.advance()

	object := Expr(&VariableValue{Pos: pos, Names: prefix})
	return &ExprStmt{Pos: pos, Expr: &MethodCall{Pos: pos, Object: object, Method: lastName, Args: args}}, nil
}

func (p *Parser) parseCondition() (Stmt, error) {
	pos := p.current.Pos
	if err := p.expect(IF, "if"); err != nil {
		return nil, err
	}
	p.advance()

	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	p.advance()

	thenBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	var elseBody Stmt
	if p.current.Type == ELSE {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		p.advance()
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}

	return &IfElse{Pos: pos, Condition: cond, Then: thenBody, Else: elseBody}, nil
}

// parseMethods parses the run of `def` declarations in a class body. A
// class must declare at least one method.
func (p *Parser) parseMethods() ([]*MethodDecl, error) {
	var methods []*MethodDecl
	for p.current.Type == DEF {
		pos := p.current.Pos
		p.advance()
		if err := p.expect(ID, "method name"); err != nil {
			return nil, err
		}
		name := p.current.Text
		p.advance()

		if err := p.expectChar('('); err != nil {
			return nil, err
		}
		p.advance()

		var params []string
		if p.current.Type == ID {
			params = append(params, p.current.Text)
			p.advance()
			for p.current.Type == CHAR && p.current.Char == ',' {
				p.advance()
				if err := p.expect(ID, "parameter name"); err != nil {
					return nil, err
				}
				params = append(params, p.current.Text)
				p.advance()
			}
		}
		// self is bound by the call itself and does not count toward arity.
		if len(params) > 0 && params[0] == "self" {
			params = params[1:]
		}

		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		p.advance()

		body, err := p.parseSuite()
		if err != nil {
			return nil, err
		}

		methods = append(methods, &MethodDecl{Pos: pos, Name: name, Params: params, Body: body})
	}
	return methods, nil
}

func (p *Parser) parseClassDefinition() (Stmt, error) {
	pos := p.current.Pos
	if err := p.expect(ID, "class name"); err != nil {
		return nil, err
	}
	className := p.current.Text
	p.advance()

	var baseName string
	var base *types.Class
	if p.current.Type == CHAR && p.current.Char == '(' {
		p.advance()
		if err := p.expect(ID, "base class name"); err != nil {
			return nil, err
		}
		baseName = p.current.Text
		p.advance()
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		p.advance()

		found, ok := p.classes.lookup(baseName)
		if !ok {
			return nil, p.fail("base class %s not found for class %s", baseName, className)
		}
		base = found
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	p.advance()
	if err := p.expect(NEWLINE, "newline"); err != nil {
		return nil, err
	}
	p.advance()
	if err := p.expect(INDENT, "indented class body"); err != nil {
		return nil, err
	}
	p.advance()
	if err := p.expect(DEF, "at least one method"); err != nil {
		return nil, err
	}

	methodDecls, err := p.parseMethods()
	if err != nil {
		return nil, err
	}

	if err := p.expect(DEDENT, "end of class body"); err != nil {
		return nil, err
	}
	p.advance()

	methods := make([]*types.Method, len(methodDecls))
	for i, m := range methodDecls {
		methods[i] = &types.Method{Name: m.Name, Params: m.Params, Body: m.Body}
	}
	class := types.NewClass(className, methods, base)
	if err := p.classes.declare(className, class); err != nil {
		return nil, p.fail("class %s already exists", className)
	}

	return &ClassDecl{Pos: pos, Name: className, Base: baseName, Methods: methodDecls, Class: class}, nil
}
