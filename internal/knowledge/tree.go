package knowledge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// CommandSpec is one raw command entry as it appears in the dataset.
type CommandSpec struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Command         string `json:"command"`
	Recommendations string `json:"recommendations"`
}

// Level groups the security commands of one named tier.
type Level struct {
	Name     string
	Commands []CommandSpec
}

// Child is a named branch of a Node, in dataset order.
type Child struct {
	Name string
	Node *Node
}

// Node is a tagged view of one position in the knowledge tree: a list of
// setup commands, a map of security levels, branch children, or any mix.
// A nil slice means the corresponding key was absent.
type Node struct {
	Setup    []CommandSpec
	Security []Level
	Children []Child
}

// Tree is a parsed dataset: the ordered list of vendor subtrees.
type Tree struct {
	Vendors []Child
}

// ParseTree decodes a dataset rooted at a "vendors" key. Object key order is
// preserved so that flattening and feature listings are deterministic.
func ParseTree(data []byte) (*Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("dataset root: %w", err)
	}
	var tree *Tree
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if key != "vendors" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}
		vendors, err := decodeChildren(dec)
		if err != nil {
			return nil, fmt.Errorf("vendors: %w", err)
		}
		tree = &Tree{Vendors: vendors}
	}
	if tree == nil {
		return nil, errors.New("dataset has no vendors key")
	}
	return tree, nil
}

// decodeChildren decodes an object of name -> subtree, preserving key order.
// Used for the top-level vendors map; nested subtrees go through decodeNode.
func decodeChildren(dec *json.Decoder) ([]Child, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var children []Child
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		node, err := decodeNode(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		children = append(children, Child{Name: name, Node: node})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return children, nil
}

// decodeNode turns one raw subtree into a tagged Node. Non-object values
// yield an empty node, which terminates the walk with no effect.
func decodeNode(data []byte) (*Node, error) {
	n := &Node{}
	if !isObject(data) {
		return n, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "setup":
			cmds := []CommandSpec{}
			if err := dec.Decode(&cmds); err != nil {
				return nil, fmt.Errorf("setup: %w", err)
			}
			n.Setup = cmds
		case "security":
			levels, err := decodeLevels(dec)
			if err != nil {
				return nil, fmt.Errorf("security: %w", err)
			}
			n.Security = levels
		default:
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, err
			}
			// Never descend into a key that names a vendor; a device named
			// like a vendor would otherwise pull in a sibling's subtree.
			if isVendorName(key) || !isObject(raw) {
				continue
			}
			child, err := decodeNode(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			n.Children = append(n.Children, Child{Name: key, Node: child})
		}
	}
	return n, nil
}

// decodeLevels decodes a security mapping of level name -> command list,
// preserving level order.
func decodeLevels(dec *json.Decoder) ([]Level, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	levels := []Level{}
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		var cmds []CommandSpec
		if err := dec.Decode(&cmds); err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		levels = append(levels, Level{Name: name, Commands: cmds})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return levels, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return s, nil
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
