package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Block:
		stmts := make([]interface{}, len(n.Stmts))
		for i, s := range n.Stmts {
			stmts[i] = toJSON(s)
		}
		return map[string]interface{}{
			"type":  "Block",
			"pos":   n.pos.String(),
			"stmts": stmts,
		}

	case *If:
		m := map[string]interface{}{
			"type": "If",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *While:
		return map[string]interface{}{
			"type": "While",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *Assignment:
		return map[string]interface{}{
			"type":  "Assign",
			"pos":   n.pos.String(),
			"name":  n.Name,
			"value": toJSON(n.Value),
		}

	case *Binary:
		return map[string]interface{}{
			"type": "Binary",
			"pos":  n.pos.String(),
			"op":   n.Op.Text(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *NumberLit:
		return map[string]interface{}{
			"type":  "Number",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *StringLit:
		return map[string]interface{}{
			"type":  "String",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *Name:
		return map[string]interface{}{
			"type": "Name",
			"pos":  n.pos.String(),
			"name": n.Value,
		}
	}

	return nil
}
