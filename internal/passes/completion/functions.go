package completion

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
)

// resolveFuncdefSignatures is part of Completion phase 4 (spec §4.3):
// fills in each funcdef shell's parameter/return types now that every
// type shell exists, so a funcdef may reference a class declared later
// in source order.
func (c *completer) resolveFuncdefSignatures() {
	for _, rec := range c.funcdefEntry {
		rec.entry.Funcdef.Params = c.resolveParamTypes(rec.unit.Params)
		rec.entry.Funcdef.ReturnType = c.resolveTypeRef(rec.unit.ReturnType)
	}
}

// resolveFunctionSignatures is Completion phase 4 (spec §4.3): resolves
// every free function's signature and registers it into the tree's
// overload sets, and every class/interface method's signature into its
// owning type.
func (c *completer) resolveFunctionSignatures() {
	for _, fn := range c.reg.Functions {
		def := &types.FunctionDef{
			Name: fn.Name, Params: c.resolveParams(fn.Params), ReturnType: c.resolveTypeRef(fn.ReturnType),
			Kind: fn.Kind, Traits: fn.Traits, Visibility: fn.Visibility,
		}
		def.Hash = ident.HashFunction(fn.Name, def.ParamHashes())
		n := c.node(fn.Name.Namespace)
		if err := c.tree.RegisterFunction(n, fn.Name.Simple, def); err != nil {
			c.diags.Addf(diag.DuplicateDeclaration, fn.Span, "%v", err)
			continue
		}
		c.result.FunctionsRegistered++
	}

	for _, rec := range c.classEntry {
		c.resolveClassMethods(rec)
	}
	for _, rec := range c.interfaceEntry {
		c.resolveInterfaceMethods(rec)
	}
}

func (c *completer) resolveParams(params []unresolved.Param) []types.Param {
	out := make([]types.Param, len(params))
	for i, p := range params {
		out[i] = types.Param{Name: p.Name, Type: c.resolveTypeRef(p.Type), HasDefault: p.HasDefault, DefaultToken: p.DefaultSrc}
	}
	return out
}

func (c *completer) resolveParamTypes(params []unresolved.Param) []types.DataType {
	out := make([]types.DataType, len(params))
	for i, p := range params {
		out[i] = c.resolveTypeRef(p.Type)
	}
	return out
}

func (c *completer) resolveClassMethods(rec *classRecord) {
	for _, m := range rec.unit.Methods {
		qn := rec.unit.Name.Child(m.Name)
		def := &types.FunctionDef{
			Name: qn, Object: &rec.unit.Name, Kind: m.Kind,
			Params: c.resolveParams(m.Params), ReturnType: c.resolveTypeRef(m.ReturnType),
			Traits: m.Traits, Visibility: m.Visibility,
		}
		def.Hash = ident.HashFunction(qn, def.ParamHashes())
		c.addClassMethod(rec, m.Name, def)
	}
}

// addClassMethod records def under rec, including behavior-set
// classification for constructors/destructors/factories (spec §3.3
// TypeBehaviors).
func (c *completer) addClassMethod(rec *classRecord, simpleName string, def *types.FunctionDef) {
	cls := rec.entry.Class
	if _, seen := cls.Methods[simpleName]; !seen {
		cls.MethodOrder = append(cls.MethodOrder, simpleName)
	}
	cls.Methods[simpleName] = append(cls.Methods[simpleName], def.Hash)
	cls.MethodDefs[def.Hash] = def

	switch def.Kind {
	case types.MethodConstructor:
		cls.Behaviors.Constructors = append(cls.Behaviors.Constructors, def.Hash)
	case types.MethodCopyConstructor:
		cls.Behaviors.CopyConstructors = append(cls.Behaviors.CopyConstructors, def.Hash)
	case types.MethodFactory:
		cls.Behaviors.Factories = append(cls.Behaviors.Factories, def.Hash)
	case types.MethodDestructor:
		cls.Behaviors.Destructor = def.Hash
		cls.Behaviors.HasDestructor = true
	}
	c.result.FunctionsRegistered++
}

func (c *completer) resolveInterfaceMethods(rec *interfaceRecord) {
	for _, m := range rec.unit.Methods {
		sig := types.MethodSignature{
			Name: m.Name, Params: c.resolveParamTypes(m.Params), ReturnType: c.resolveTypeRef(m.ReturnType),
			IsConst: m.Traits.Const,
		}
		rec.entry.Interface.Methods = append(rec.entry.Interface.Methods, sig)
	}
}

// resolveAliases resolves every `typedef` target now that all type
// shells exist, and registers the Alias entry plus its lookup shortcut
// (spec §3.3 AliasType).
func (c *completer) resolveAliases() {
	for _, a := range c.reg.Aliases {
		target := c.resolveTypeRef(a.Target)
		hash := ident.HashName(a.Name)
		entry := &types.TypeEntry{Kind: types.KindAlias, Name: a.Name, Hash: hash, Alias: &types.AliasType{Target: target.Hash}}
		n := c.node(a.Name.Namespace)
		if err := c.tree.RegisterType(n, a.Name.Simple, entry); err != nil {
			c.diags.Addf(diag.DuplicateDeclaration, a.Span, "%v", err)
			continue
		}
		_ = c.tree.RegisterAlias(n, a.Name.Simple, target.Hash)
		c.result.TypesRegistered++
	}
}
