package completion

import (
	"github.com/alexparlett/angelscript-go/internal/diag"
	"github.com/alexparlett/angelscript-go/internal/ident"
	"github.com/alexparlett/angelscript-go/internal/types"
	"github.com/alexparlett/angelscript-go/internal/unresolved"
)

type interfaceRecord struct {
	entry *types.TypeEntry
	unit  *unresolved.Interface
	node  ident.NodeRef
}

type funcdefRecord struct {
	entry *types.TypeEntry
	unit  *unresolved.Funcdef
}

// registerShells is Completion phase 3 (spec §4.3): creates the
// resolved TypeEntry shell for every declaration Registration
// discovered, in dependency-safe order. Enums need nothing else;
// funcdefs/interfaces/classes/mixins may name any other type by
// reference and so must all exist (empty) before any signature,
// inheritance link, or member is filled in during later phases.
func (c *completer) registerShells() {
	c.funcdefEntry = map[ident.TypeHash]*funcdefRecord{}

	for _, e := range c.reg.Enums {
		c.registerEnumShell(e)
	}
	for _, f := range c.reg.Funcdefs {
		c.registerFuncdefShell(f)
	}
	for _, it := range c.reg.Interfaces {
		c.registerInterfaceShell(it)
	}
	for _, cls := range c.reg.Classes {
		if !cls.IsMixin {
			c.registerClassShell(cls)
		}
	}
	for _, cls := range c.reg.Classes {
		if cls.IsMixin {
			c.registerClassShell(cls)
		}
	}
}

func (c *completer) node(path []string) ident.NodeRef {
	ref, _ := c.tree.GetOrCreatePath(path)
	return ref
}

func (c *completer) registerEnumShell(e *unresolved.Enum) {
	hash := ident.HashName(e.Name)
	entry := &types.TypeEntry{Kind: types.KindEnum, Name: e.Name, Hash: hash, Enum: &types.EnumType{Source: e.Unit}}

	var next int64
	for _, v := range e.Values {
		val := next
		if v.Literal != nil {
			val = *v.Literal
		}
		entry.Enum.Values = append(entry.Enum.Values, types.EnumValue{Name: v.Name, Value: val})
		next = val + 1
	}

	n := c.node(e.Name.Namespace)
	if err := c.tree.RegisterType(n, e.Name.Simple, entry); err != nil {
		c.diags.Addf(diag.DuplicateDeclaration, e.Span, "%v", err)
		return
	}
	c.result.TypesRegistered++
}

func (c *completer) registerFuncdefShell(f *unresolved.Funcdef) {
	hash := ident.HashName(f.Name)
	entry := &types.TypeEntry{
		Kind: types.KindFuncdef, Name: f.Name, Hash: hash,
		Funcdef: &types.FuncdefType{Source: f.Unit, Parent: f.Parent},
	}
	n := c.node(f.Name.Namespace)
	if err := c.tree.RegisterType(n, f.Name.Simple, entry); err != nil {
		c.diags.Addf(diag.DuplicateDeclaration, f.Span, "%v", err)
		return
	}
	c.funcdefEntry[hash] = &funcdefRecord{entry: entry, unit: f}
	c.result.TypesRegistered++
}

func (c *completer) registerInterfaceShell(it *unresolved.Interface) {
	hash := ident.HashName(it.Name)
	entry := &types.TypeEntry{Kind: types.KindInterface, Name: it.Name, Hash: hash, Interface: &types.InterfaceType{Source: it.Unit}}
	n := c.node(it.Name.Namespace)
	if err := c.tree.RegisterType(n, it.Name.Simple, entry); err != nil {
		c.diags.Addf(diag.DuplicateDeclaration, it.Span, "%v", err)
		return
	}
	c.interfaceEntry[hash] = &interfaceRecord{entry: entry, unit: it, node: n}
	c.result.TypesRegistered++
}

func (c *completer) registerClassShell(cls *unresolved.Class) {
	hash := ident.HashName(cls.Name)
	entry := &types.TypeEntry{
		Kind: types.KindClass, Name: cls.Name, Hash: hash,
		Class: &types.ClassType{
			Source:     cls.Unit,
			Methods:    map[string][]ident.TypeHash{},
			MethodDefs: map[ident.TypeHash]*types.FunctionDef{},
			ITables:    map[ident.TypeHash]types.ITable{},
			IsFinal:    cls.IsFinal, IsAbstract: cls.IsAbstract, IsMixin: cls.IsMixin, IsShared: cls.IsShared,
			TemplateParams: cls.TemplateParams,
		},
	}
	n := c.node(cls.Name.Namespace)
	if err := c.tree.RegisterType(n, cls.Name.Simple, entry); err != nil {
		c.diags.Addf(diag.DuplicateDeclaration, cls.Span, "%v", err)
		return
	}
	c.classEntry[hash] = &classRecord{entry: entry, unit: cls, node: n}
	c.result.TypesRegistered++
}
