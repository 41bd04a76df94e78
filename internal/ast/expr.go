package ast

import "github.com/alexparlett/angelscript-go/internal/ident"

// Expr is the sum of expression node kinds the Compilation pass walks
// (spec §4.4.2).
type Expr interface {
	exprNode()
	Pos() ident.Span
}

type exprBase struct{ Span ident.Span }

func (e exprBase) Pos() ident.Span { return e.Span }

// LiteralKind discriminates a Literal's source token kind.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitInt64
	LitFloat
	LitDouble
	LitString
	LitBool
	LitNull
)

// Literal is a constant expression (spec §4.4.2).
type Literal struct {
	exprBase
	Kind LiteralKind
	Int  int64
	Real float64
	Str  string
	Bool bool
}

func (*Literal) exprNode() {}

// Ident is a bare name reference, resolved against locals, then
// namespaces (spec §4.4.2).
type Ident struct {
	exprBase
	Name string
}

func (*Ident) exprNode() {}

// BinaryOp enumerates binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpIs // handle identity: `a is b`
)

// Binary is a binary expression.
type Binary struct {
	exprBase
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Binary) exprNode() {}

// UnaryOp enumerates unary/prefix-postfix operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpCom
	OpNot
	OpPreInc
	OpPreDec
	OpPostInc
	OpPostDec
)

// Unary is a unary expression.
type Unary struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

func (*Unary) exprNode() {}

// Assign is `lhs = rhs` or a handle assignment `@lhs = @rhs` (IsHandle).
type Assign struct {
	exprBase
	Target   Expr
	Value    Expr
	IsHandle bool
}

func (*Assign) exprNode() {}

// Member is `obj.Name` member access.
type Member struct {
	exprBase
	Object Expr
	Name   string
}

func (*Member) exprNode() {}

// Index is `a[i]`.
type Index struct {
	exprBase
	Object Expr
	Arg    Expr
}

func (*Index) exprNode() {}

// Arg is one call argument, optionally named.
type Arg struct {
	Name  string // empty for positional
	Value Expr
}

// Call is a function/method call. Callee is the expression naming the
// function (an Ident, Member, or the constructed-type name for
// `Type(args)` construction, distinguished by IsConstructor).
type Call struct {
	exprBase
	Callee      Expr
	Args        []Arg
	IsConstructor bool
}

func (*Call) exprNode() {}

// Cast is `cast<T>(e)`.
type Cast struct {
	exprBase
	Target TypeExpr
	Value  Expr
}

func (*Cast) exprNode() {}

// Ternary is `c ? a : b`.
type Ternary struct {
	exprBase
	Cond, Then, Else Expr
}

func (*Ternary) exprNode() {}
