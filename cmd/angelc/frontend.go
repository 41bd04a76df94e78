package main

import "github.com/alexparlett/angelscript-go/internal/ast"

// Frontend turns one unit's raw source bytes into a parsed ast.Script.
// This repository ships no implementation - lexing and parsing are
// explicitly out of scope (spec §1) - an embedding host registers its
// own via RegisterFrontend, typically from an init function in a build
// that links in a real parser.
type Frontend interface {
	Parse(name string, src []byte) (*ast.Script, error)
}

var _frontend Frontend

// RegisterFrontend installs the Frontend angelc uses to turn source
// text into an ast.Script.
func RegisterFrontend(f Frontend) { _frontend = f }

// RegisteredFrontend returns the currently installed Frontend, or nil
// if none has been registered.
func RegisteredFrontend() Frontend { return _frontend }
