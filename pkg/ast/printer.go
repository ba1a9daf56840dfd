package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indentLvl = 3

// Fprint writes an indented tree of node to w. Precedence levels without an
// operator are transparent and do not appear in the output.
func Fprint(w io.Writer, node any) error {
	p := &treePrinter{w: w}
	p.print(node, 0)
	return p.err
}

type treePrinter struct {
	w   io.Writer
	err error
}

func (self *treePrinter) line(indent int, format string, args ...any) {
	if self.err != nil {
		return
	}
	prefix := ""
	if indent > 0 {
		prefix = strings.Repeat(" ", indent-1) + "| "
	}
	_, self.err = fmt.Fprintf(self.w, prefix+format+"\n", args...)
}

func (self *treePrinter) print(node any, indent int) {
	next := indent + indentLvl
	switch n := node.(type) {
	case *Program:
		self.line(indent, "Program")
		for _, decl := range n.Declarations {
			self.print(decl, next)
		}
	case *Function:
		names := make([]string, len(n.Params))
		for i, param := range n.Params {
			names[i] = param.Name
		}
		self.line(indent, "Function %s(%s)", n.Name.Name, strings.Join(names, ", "))
		self.print(n.Body, next)
	case *Variable:
		self.line(indent, "Variable %s %s", n.Mutability, n.Name.Name)
		self.print(n.Initializer, next)
	case *ExpressionStmt:
		self.line(indent, "Expression")
		self.print(n.Expr, next)
	case *Loop:
		self.line(indent, "Loop")
		self.print(n.Body, next)
	case *Print:
		self.line(indent, "Print")
		self.print(n.Expr, next)
	case *Return:
		self.line(indent, "Return")
		self.print(n.Expr, next)
	case *Block:
		self.line(indent, "Block")
		for _, decl := range n.Declarations {
			self.print(decl, next)
		}
	case *Expr:
		self.print(n.Assignment, indent)
	case *Assign:
		self.line(indent, "Assign %s", n.Name.Name)
		self.print(n.Value, next)
	case *LogicOr:
		if n.Right == nil {
			self.print(n.Left, indent)
			return
		}
		self.binop(indent, n.Right.Op, n.Left, n.Right.Operand)
	case *LogicAnd:
		if n.Right == nil {
			self.print(n.Left, indent)
			return
		}
		self.binop(indent, n.Right.Op, n.Left, n.Right.Operand)
	case *Equality:
		if n.Right == nil {
			self.print(n.Left, indent)
			return
		}
		self.binop(indent, n.Right.Op, n.Left, n.Right.Operand)
	case *Comparison:
		if n.Right == nil {
			self.print(n.Left, indent)
			return
		}
		self.binop(indent, n.Right.Op, n.Left, n.Right.Operand)
	case *Term:
		if n.Right == nil {
			self.print(n.Left, indent)
			return
		}
		self.binop(indent, n.Right.Op, n.Left, n.Right.Operand)
	case *Factor:
		if n.Right == nil {
			self.print(n.Left, indent)
			return
		}
		self.binop(indent, n.Right.Op, n.Left, n.Right.Operand)
	case *Unary:
		if n.Op == NoUnaryOp {
			self.print(n.Right, indent)
			return
		}
		self.line(indent, "Unary %s", n.Op)
		self.print(n.Right, next)
	case *IntLit:
		self.line(indent, "Int %s", n.Text)
	case *FloatLit:
		self.line(indent, "Float %s", n.Text)
	case *StringLit:
		self.line(indent, "String %s", strconv.Quote(n.Text))
	case *Identifier:
		self.line(indent, "Identifier %s", n.Name)
	case *BoolLit:
		self.line(indent, "Bool %t", n.Value)
	case *Grouping:
		self.line(indent, "Grouping")
		self.print(n.Expr, next)
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", node))
	}
}

func (self *treePrinter) binop(indent int, op fmt.Stringer, left, right any) {
	self.line(indent, "Binop %s", op)
	self.print(left, indent+indentLvl)
	self.print(right, indent+indentLvl)
}

// Sexpr renders node on one line with every operator application
// parenthesized, e.g. 1 - 2 - 3 becomes ((1 - 2) - 3).
func Sexpr(node any) string {
	var sb strings.Builder
	writeSexpr(&sb, node)
	return sb.String()
}

func writeSexpr(sb *strings.Builder, node any) {
	switch n := node.(type) {
	case *Program:
		sb.WriteString("(program")
		writeDecls(sb, n.Declarations)
		sb.WriteString(")")
	case *Function:
		sb.WriteString("(fun " + n.Name.Name + " (")
		for i, param := range n.Params {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(param.Name)
		}
		sb.WriteString(") ")
		writeSexpr(sb, n.Body)
		sb.WriteString(")")
	case *Variable:
		sb.WriteString("(" + strings.ToLower(n.Mutability.String()) + " " + n.Name.Name + " ")
		writeSexpr(sb, n.Initializer)
		sb.WriteString(")")
	case *ExpressionStmt:
		writeSexpr(sb, n.Expr)
	case *Loop:
		sb.WriteString("(loop ")
		writeSexpr(sb, n.Body)
		sb.WriteString(")")
	case *Print:
		sb.WriteString("(print ")
		writeSexpr(sb, n.Expr)
		sb.WriteString(")")
	case *Return:
		sb.WriteString("(return ")
		writeSexpr(sb, n.Expr)
		sb.WriteString(")")
	case *Block:
		sb.WriteString("(block")
		writeDecls(sb, n.Declarations)
		sb.WriteString(")")
	case *Expr:
		writeSexpr(sb, n.Assignment)
	case *Assign:
		sb.WriteString("(" + n.Name.Name + " = ")
		writeSexpr(sb, n.Value)
		sb.WriteString(")")
	case *LogicOr:
		if n.Right == nil {
			writeSexpr(sb, n.Left)
			return
		}
		writeInfix(sb, n.Left, n.Right.Op, n.Right.Operand)
	case *LogicAnd:
		if n.Right == nil {
			writeSexpr(sb, n.Left)
			return
		}
		writeInfix(sb, n.Left, n.Right.Op, n.Right.Operand)
	case *Equality:
		if n.Right == nil {
			writeSexpr(sb, n.Left)
			return
		}
		writeInfix(sb, n.Left, n.Right.Op, n.Right.Operand)
	case *Comparison:
		if n.Right == nil {
			writeSexpr(sb, n.Left)
			return
		}
		writeInfix(sb, n.Left, n.Right.Op, n.Right.Operand)
	case *Term:
		if n.Right == nil {
			writeSexpr(sb, n.Left)
			return
		}
		writeInfix(sb, n.Left, n.Right.Op, n.Right.Operand)
	case *Factor:
		if n.Right == nil {
			writeSexpr(sb, n.Left)
			return
		}
		writeInfix(sb, n.Left, n.Right.Op, n.Right.Operand)
	case *Unary:
		if n.Op == NoUnaryOp {
			writeSexpr(sb, n.Right)
			return
		}
		sb.WriteString("(" + n.Op.String())
		writeSexpr(sb, n.Right)
		sb.WriteString(")")
	case *IntLit:
		sb.WriteString(n.Text)
	case *FloatLit:
		sb.WriteString(n.Text)
	case *StringLit:
		sb.WriteString(strconv.Quote(n.Text))
	case *Identifier:
		sb.WriteString(n.Name)
	case *BoolLit:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *Grouping:
		sb.WriteString("(group ")
		writeSexpr(sb, n.Expr)
		sb.WriteString(")")
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", node))
	}
}

func writeDecls(sb *strings.Builder, decls []Declaration) {
	for _, decl := range decls {
		sb.WriteString(" ")
		writeSexpr(sb, decl)
	}
}

func writeInfix(sb *strings.Builder, left any, op fmt.Stringer, right any) {
	sb.WriteString("(")
	writeSexpr(sb, left)
	sb.WriteString(" " + op.String() + " ")
	writeSexpr(sb, right)
	sb.WriteString(")")
}
