package ast

import "github.com/alexparlett/angelscript-go/internal/ident"

// Stmt is the sum of statement node kinds (spec §4.4.5).
type Stmt interface {
	stmtNode()
	Pos() ident.Span
}

type stmtBase struct{ Span ident.Span }

func (s stmtBase) Pos() ident.Span { return s.Span }

// Block is `{ ... }`, its own lexical scope.
type Block struct {
	stmtBase
	Stmts []Stmt
}

func (*Block) stmtNode() {}

// VarDecl is a local variable declaration, with an optional
// initializer.
type VarDecl struct {
	stmtBase
	Name        string
	Type        TypeExpr
	Initializer Expr
	IsConst     bool
}

func (*VarDecl) stmtNode() {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	stmtBase
	X Expr
}

func (*ExprStmt) stmtNode() {}

// If is `if (cond) then [else else_]`.
type If struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (*If) stmtNode() {}

// While is `while (cond) body`.
type While struct {
	stmtBase
	Cond Expr
	Body Stmt
}

func (*While) stmtNode() {}

// DoWhile is `do body while (cond);`.
type DoWhile struct {
	stmtBase
	Body Stmt
	Cond Expr
}

func (*DoWhile) stmtNode() {}

// For is `for (init; cond; post) body`. Init/Post may each be nil.
type For struct {
	stmtBase
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

func (*For) stmtNode() {}

// Case is one `case v:`/`default:` arm of a switch; Value is nil for
// the default arm.
type Case struct {
	Value Expr
	Stmts []Stmt
	Span  ident.Span
}

// Switch is a switch statement (spec §4.4.5).
type Switch struct {
	stmtBase
	Tag   Expr
	Cases []Case
}

func (*Switch) stmtNode() {}

// Return is `return [value];`.
type Return struct {
	stmtBase
	Value Expr // nil for a void return
}

func (*Return) stmtNode() {}

// Break is `break;`.
type Break struct{ stmtBase }

func (*Break) stmtNode() {}

// Continue is `continue;`.
type Continue struct{ stmtBase }

func (*Continue) stmtNode() {}

// Catch is one `catch { ... }` clause.
type Catch struct {
	Body *Block
	Span ident.Span
}

// TryCatch is `try { ... } catch { ... }`.
type TryCatch struct {
	stmtBase
	Try   *Block
	Catch Catch
}

func (*TryCatch) stmtNode() {}
