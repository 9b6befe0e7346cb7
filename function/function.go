/*
File    : sparrow/function/function.go
*/

// Package function holds the runtime representations that close over an
// environment: user-defined functions, classes, and object instances. It
// sits above package objects (the closure-free value variants) and package
// scope (the environment), tying the two together — kept separate from
// objects to avoid a cycle, since scope.Scope stores objects.Value and a
// Function needs to store a *scope.Scope.
package function

import (
	"fmt"

	"sparrow/objects"
	"sparrow/parser"
	"sparrow/scope"
)

// Function is a user-defined function or method: its parameter names, its
// body, the environment it closed over at definition time, and — for
// methods — the class that defines it (nil for free functions).
type Function struct {
	Name   string
	Params []string
	Body   []parser.Node
	Env    *scope.Scope
	Owner  *Class
}

func (f *Function) Kind() objects.Kind { return objects.FunctionKind }

func (f *Function) String() string {
	return fmt.Sprintf("<function %s/%d>", f.Name, len(f.Params))
}

// Class is a class descriptor: single-parent inheritance chain, its own
// methods (special "init" kept separately), and attribute expressions
// evaluated once at class-definition time.
type Class struct {
	Name       string
	Parent     *Class
	Methods    map[string]*Function
	Init       *Function // nil if the class declares no constructor
	ClassAttrs map[string]objects.Value
}

func NewClass(name string, parent *Class) *Class {
	return &Class{
		Name:       name,
		Parent:     parent,
		Methods:    make(map[string]*Function),
		ClassAttrs: make(map[string]objects.Value),
	}
}

func (c *Class) Kind() objects.Kind { return "class" }

func (c *Class) String() string {
	return fmt.Sprintf("<class %s>", c.Name)
}

// FindMethod walks the parent chain starting at c for a method named name,
// returning both the function and the class that actually declares it (the
// latter is what a nested super call should resolve against next).
func (c *Class) FindMethod(name string) (*Function, *Class) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok {
			return m, cur
		}
	}
	return nil, nil
}

func (c *Class) FindInit() (*Function, *Class) {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur.Init != nil {
			return cur.Init, cur
		}
	}
	return nil, nil
}

// Instance is a live object: the class it was built from and its own
// attribute environment. Method lookup always goes through Class.FindMethod
// rather than eagerly copying method tables into the instance.
type Instance struct {
	Class *Class
	Attrs *scope.Scope
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Attrs: scope.New(nil)}
}

func (o *Instance) Kind() objects.Kind { return objects.InstanceKind }

func (o *Instance) String() string {
	return fmt.Sprintf("<object %s>", o.Class.Name)
}

// SuperRef is the value bound to the name "super" inside a method
// activation whose owning class has a parent: a named alias pointing at the
// parent class, resolved against the same instance.
type SuperRef struct {
	Instance *Instance
	From     *Class
}

func (s *SuperRef) Kind() objects.Kind { return "super" }

func (s *SuperRef) String() string {
	return fmt.Sprintf("<super %s>", s.From.Name)
}
