package parser

// parseTest is the entry point for any value-producing expression:
// and-tests chained with `or`.
func (p *Parser) parseTest() (Expr, error) {
	pos := p.current.Pos
	left, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	for p.current.Type == OR {
		p.advance()
		right, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		left = &LogicalOp{Pos: pos, And: false, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAndTest() (Expr, error) {
	pos := p.current.Pos
	left, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	for p.current.Type == AND {
		p.advance()
		right, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		left = &LogicalOp{Pos: pos, And: true, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNotTest() (Expr, error) {
	if p.current.Type == NOT {
		pos := p.current.Pos
		p.advance()
		operand, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		return &NotOp{Pos: pos, Operand: operand}, nil
	}
	return p.parseComparison()
}

// parseComparison parses at most one relational operator; Mython does not
// chain comparisons (`a < b < c` is a parse error: after `a < b` the
// second `<` is left where the end of the statement is expected).
func (p *Parser) parseComparison() (Expr, error) {
	pos := p.current.Pos
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	switch {
	case p.current.Type == CHAR && p.current.Char == '<':
		p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &CompareOp{Pos: pos, Operator: LESS, Left: left, Right: right}, nil
	case p.current.Type == CHAR && p.current.Char == '>':
		p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &CompareOp{Pos: pos, Operator: GREATER, Left: left, Right: right}, nil
	case p.current.Type == EQ, p.current.Type == NOT_EQ, p.current.Type == LESS_OR_EQ, p.current.Type == GREATER_OR_EQ:
		op := p.current.Type
		p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &CompareOp{Pos: pos, Operator: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseExpression() (Expr, error) {
	pos := p.current.Pos
	left, err := p.parseAdder()
	if err != nil {
		return nil, err
	}
	for p.current.Type == CHAR && (p.current.Char == '+' || p.current.Char == '-') {
		op := p.current.Char
		p.advance()
		right, err := p.parseAdder()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Pos: pos, Operator: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdder() (Expr, error) {
	pos := p.current.Pos
	left, err := p.parseMult()
	if err != nil {
		return nil, err
	}
	for p.current.Type == CHAR && (p.current.Char == '*' || p.current.Char == '/') {
		op := p.current.Char
		p.advance()
		right, err := p.parseMult()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Pos: pos, Operator: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMult() (Expr, error) {
	pos := p.current.Pos

	if p.current.Type == CHAR && p.current.Char == '(' {
		p.advance()
		inner, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		p.advance()
		return inner, nil
	}

	if p.current.Type == CHAR && p.current.Char == '-' {
		p.advance()
		operand, err := p.parseMult()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Pos: pos, Operator: '*', Left: operand, Right: &NumberLiteral{Pos: pos, Val: -1}}, nil
	}

	switch p.current.Type {
	case NUMBER:
		v := p.current.Number
		p.advance()
		return &NumberLiteral{Pos: pos, Val: v}, nil
	case STRING:
		v := p.current.Text
		p.advance()
		return &StringLiteral{Pos: pos, Val: v}, nil
	case TRUE:
		p.advance()
		return &BoolLiteral{Pos: pos, Val: true}, nil
	case FALSE:
		p.advance()
		return &BoolLiteral{Pos: pos, Val: false}, nil
	case NONE:
		p.advance()
		return &NoneLiteral{Pos: pos}, nil
	}

	expr, err := p.parseDottedIdsInMultExpr(nil)
	for err == nil && p.current.Type == CHAR && p.current.Char == '.' {
		p.advance()
		expr, err = p.parseDottedIdsInMultExpr(expr)
	}
	return expr, err
}

// parseDottedIdsInMultExpr handles every expression that begins with a bare
// identifier: a variable/field read, a method call on a dotted path, a
// class construction `ClassName(args)`, or the builtin `str(x)`. With a
// non-nil receiver it parses the `method(args)` that follows the `.` after
// a call, as in `A().f()`, and calls that method on receiver.
func (p *Parser) parseDottedIdsInMultExpr(receiver Expr) (Expr, error) {
	pos := p.current.Pos
	names, err := p.parseDottedIds()
	if err != nil {
		return nil, err
	}
	if receiver != nil && (len(names) != 1 || !(p.current.Type == CHAR && p.current.Char == '(')) {
		return nil, p.fail("expected a method call on the result of a call")
	}

	if p.current.Type == CHAR && p.current.Char == '(' {
		p.advance()
		var args []Expr
		if !(p.current.Type == CHAR && p.current.Char == ')') {
			args, err = p.parseTestList()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		p.advance()

		methodName := names[len(names)-1]
		prefix := names[:len(names)-1]

		if receiver != nil {
			return &MethodCall{Pos: pos, Object: receiver, Method: methodName, Args: args}, nil
		}
		if len(prefix) > 0 {
			return &MethodCall{Pos: pos, Object: &VariableValue{Pos: pos, Names: prefix}, Method: methodName, Args: args}, nil
		}
		if class, ok := p.classes.lookup(methodName); ok {
			return &NewInstance{Pos: pos, ClassName: methodName, Class: class, Args: args}, nil
		}
		if methodName == "str" {
			if len(args) != 1 {
				return nil, p.fail("function str takes exactly one argument")
			}
			return &Stringify{Pos: pos, Arg: args[0]}, nil
		}
		return nil, p.fail("unknown call to %s()", methodName)
	}

	return &VariableValue{Pos: pos, Names: names}, nil
}

func (p *Parser) parseTestList() ([]Expr, error) {
	first, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	result := []Expr{first}
	for p.current.Type == CHAR && p.current.Char == ',' {
		p.advance()
		next, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		result = append(result, next)
	}
	return result, nil
}
