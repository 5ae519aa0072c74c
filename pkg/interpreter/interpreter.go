package interpreter

import (
	"fmt"

	"mini/interpreter-go/pkg/binder"
	"mini/interpreter-go/pkg/runtime"
)

type evaluator struct {
	vars   *runtime.Variables
	last   runtime.Value
	blocks []*blockFrame
}

// blockFrame tracks the store entries a block's declarations displaced. An
// entry is saved when the declaration runs, so assignments the block made to
// an outer variable of the same name before that point survive the exit.
type blockFrame struct {
	locals map[*binder.VariableSymbol]bool
	saved  map[string]storeEntry
}

type storeEntry struct {
	value   runtime.Value
	present bool
}

// Evaluate runs stmt against vars and returns the value of the last
// expression statement or variable declaration it executed (nil when none
// ran). vars is mutated in place and stays valid after a runtime error.
func Evaluate(stmt binder.BoundStatement, vars *runtime.Variables) (runtime.Value, error) {
	e := &evaluator{vars: vars}
	if err := e.evaluateStatement(stmt); err != nil {
		return nil, err
	}
	return e.last, nil
}

func (e *evaluator) evaluateStatement(node binder.BoundStatement) error {
	switch n := node.(type) {
	case *binder.BlockStatement:
		return e.evaluateBlockStatement(n)
	case *binder.ExpressionStatement:
		value, err := e.evaluateExpression(n.Expression)
		if err != nil {
			return err
		}
		e.last = value
		return nil
	case *binder.VariableDeclaration:
		value, err := e.evaluateExpression(n.Initializer)
		if err != nil {
			return err
		}
		e.declare(n.Variable)
		e.vars.Set(n.Variable.Name, value)
		e.last = value
		return nil
	case *binder.IfStatement:
		condition, err := e.evaluateCondition(n.Condition)
		if err != nil {
			return err
		}
		if condition {
			return e.evaluateStatement(n.ThenStatement)
		}
		if n.ElseStatement != nil {
			return e.evaluateStatement(n.ElseStatement)
		}
		return nil
	case *binder.WhileStatement:
		for {
			condition, err := e.evaluateCondition(n.Condition)
			if err != nil {
				return err
			}
			if !condition {
				return nil
			}
			if err := e.evaluateStatement(n.Body); err != nil {
				return err
			}
		}
	case *binder.ForStatement:
		return e.evaluateForStatement(n)
	default:
		panic(fmt.Sprintf("interpreter: unexpected statement %T", node))
	}
}

// evaluateBlockStatement hides the block's own declarations once it exits:
// each name a declaration displaced gets its earlier store entry back.
func (e *evaluator) evaluateBlockStatement(n *binder.BlockStatement) error {
	frame := &blockFrame{}
	if len(n.Locals) > 0 {
		frame.locals = make(map[*binder.VariableSymbol]bool, len(n.Locals))
		for _, local := range n.Locals {
			frame.locals[local] = true
		}
		frame.saved = make(map[string]storeEntry, len(n.Locals))
	}
	e.blocks = append(e.blocks, frame)
	defer func() {
		e.blocks = e.blocks[:len(e.blocks)-1]
		e.restore(frame.saved)
	}()
	for _, stmt := range n.Statements {
		if err := e.evaluateStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// declare records the entry variable is about to overwrite, once per block
// execution, in the frame of the block that owns variable. Top-level
// declarations belong to no frame and persist.
func (e *evaluator) declare(variable *binder.VariableSymbol) {
	for i := len(e.blocks) - 1; i >= 0; i-- {
		frame := e.blocks[i]
		if !frame.locals[variable] {
			continue
		}
		if _, done := frame.saved[variable.Name]; !done {
			value, present := e.vars.Get(variable.Name)
			frame.saved[variable.Name] = storeEntry{value: value, present: present}
		}
		return
	}
}

func (e *evaluator) restore(saved map[string]storeEntry) {
	for name, old := range saved {
		if old.present {
			e.vars.Set(name, old.value)
		} else {
			e.vars.Delete(name)
		}
	}
}

// evaluateForStatement evaluates both bounds once and iterates inclusively.
// The body may assign the loop variable without affecting the iteration.
func (e *evaluator) evaluateForStatement(n *binder.ForStatement) error {
	lower, err := e.evaluateInteger(n.LowerBound)
	if err != nil {
		return err
	}
	upper, err := e.evaluateInteger(n.UpperBound)
	if err != nil {
		return err
	}
	defer e.preserve([]*binder.VariableSymbol{n.Variable})()
	for i := int64(lower); i <= int64(upper); i++ {
		e.vars.Set(n.Variable.Name, runtime.IntegerValue{Val: int32(i)})
		if err := e.evaluateStatement(n.Body); err != nil {
			return err
		}
	}
	return nil
}

// preserve records the current store entries for variables and returns a
// function that restores them, deleting names that had no entry.
func (e *evaluator) preserve(variables []*binder.VariableSymbol) func() {
	saved := make(map[string]storeEntry, len(variables))
	for _, variable := range variables {
		value, present := e.vars.Get(variable.Name)
		saved[variable.Name] = storeEntry{value: value, present: present}
	}
	return func() { e.restore(saved) }
}
