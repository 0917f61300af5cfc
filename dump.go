package monkey

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Dump converts node into nested ordered maps. Every map starts with a
// "type" key followed by the node's fields in declaration order, which
// keeps the JSON encoding of a tree deterministic.
func Dump(node Node) (*orderedmap.OrderedMap, error) {
	var obj = newObject()

	switch n := node.(type) {
	case *Program:
		obj.Set("type", "Program")

		var statements = make([]any, 0, len(n.Statements))
		for _, stmt := range n.Statements {
			value, err := Dump(stmt)
			if err != nil {
				return nil, err
			}
			statements = append(statements, value)
		}

		obj.Set("statements", statements)

	case *LetStatement:
		obj.Set("type", "LetStatement")

		name, err := Dump(n.Name)
		if err != nil {
			return nil, err
		}
		obj.Set("name", name)

		value, err := Dump(n.Value)
		if err != nil {
			return nil, err
		}
		obj.Set("value", value)

	case *ReturnStatement:
		obj.Set("type", "ReturnStatement")

		value, err := Dump(n.Value)
		if err != nil {
			return nil, err
		}
		obj.Set("value", value)

	case *ExpressionStatement:
		obj.Set("type", "ExpressionStatement")

		expression, err := Dump(n.Expression)
		if err != nil {
			return nil, err
		}
		obj.Set("expression", expression)

	case *Identifier:
		obj.Set("type", "Identifier")
		obj.Set("value", n.Value)

	case *IntegerLiteral:
		obj.Set("type", "IntegerLiteral")
		obj.Set("value", n.Value)

	case *PrefixExpression:
		obj.Set("type", "PrefixExpression")
		obj.Set("operator", n.Operator)

		right, err := Dump(n.Right)
		if err != nil {
			return nil, err
		}
		obj.Set("right", right)

	case *InfixExpression:
		obj.Set("type", "InfixExpression")

		left, err := Dump(n.Left)
		if err != nil {
			return nil, err
		}
		obj.Set("left", left)
		obj.Set("operator", n.Operator)

		right, err := Dump(n.Right)
		if err != nil {
			return nil, err
		}
		obj.Set("right", right)

	default:
		return nil, fmt.Errorf("invalid node: %T", node)
	}

	return obj, nil
}

func newObject() *orderedmap.OrderedMap {
	var obj = orderedmap.New()
	obj.SetEscapeHTML(false)
	return obj
}

// DumpJSON encodes program as indented JSON. Operators such as < and >
// are written as-is rather than HTML-escaped.
func DumpJSON(program *Program) ([]byte, error) {
	obj, err := Dump(program)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var encoder = json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(obj); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
