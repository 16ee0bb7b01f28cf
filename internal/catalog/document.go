package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"shopkeeper/internal/diagnostic"
)

// DefaultDocument is written when the config file does not exist yet.
//
//go:embed default_config.yml
var DefaultDocument []byte

// Sentinel errors for document edits.
var (
	ErrShopExists      = errors.New("shop already exists")
	ErrShopNotFound    = errors.New("shop not found")
	ErrInvalidShopID   = errors.New("shop name is empty")
	ErrInvalidDocument = errors.New("config root is not a mapping")
	ErrShopInherited   = errors.New("shop is defined through a merge key")
)

// defaultFileMode applies to config files that did not exist before a write.
const defaultFileMode os.FileMode = 0o644

// Example trade added to newly created shops.
const (
	exampleIngredient = "cobblestone:64"
	exampleResult     = "diamond:1"
)

// LoadFile reads and parses a config document.
func LoadFile(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a document node. Empty input yields an empty document.
func Parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &doc, nil
}

// Marshal serializes a document node to YAML.
func Marshal(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes a document to path. The file is replaced atomically.
func WriteFile(doc *yaml.Node, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	defer os.Remove(tmp.Name())

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// CreateShop returns a copy of doc with a new shop holding one example trade.
// The name is trimmed but keeps its case; it must not collide with an
// existing shop id.
func CreateShop(doc *yaml.Node, name string) (*yaml.Node, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return nil, ErrInvalidShopID
	}

	out, root, err := editableRoot(doc)
	if err != nil {
		return nil, err
	}

	shops, err := shopsMapping(root, true)
	if err != nil {
		return nil, err
	}

	if hasShop(shops, NormalizeID(key)) {
		return nil, fmt.Errorf("%w: %s", ErrShopExists, key)
	}

	trade := mappingNode(
		scalarNode(keyItem), scalarNode(exampleIngredient),
		scalarNode(keyTrade), scalarNode(exampleResult),
	)

	shop := mappingNode(
		scalarNode(keyDisplayName), scalarNode(DefaultDisplayName),
		scalarNode(keyTrades), &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: []*yaml.Node{trade}},
	)

	shops.Content = append(shops.Content, scalarNode(key), shop)

	return out, nil
}

// DeleteShop returns a copy of doc without the named shop. Every key that
// normalizes to the same id is removed. A shop that also arrives through a
// merge key cannot be removed here and yields ErrShopInherited.
func DeleteShop(doc *yaml.Node, name string) (*yaml.Node, error) {
	id := NormalizeID(name)
	if id == "" {
		return nil, ErrInvalidShopID
	}

	out, root, err := editableRoot(doc)
	if err != nil {
		return nil, err
	}

	shops, err := shopsMapping(root, false)
	if err != nil {
		return nil, err
	}

	if shops == nil {
		return nil, fmt.Errorf("%w: %s", ErrShopNotFound, name)
	}

	kept := shops.Content[:0:0]
	removed := false

	for i := 0; i+1 < len(shops.Content); i += 2 {
		if NormalizeID(shops.Content[i].Value) == id {
			removed = true
			continue
		}

		kept = append(kept, shops.Content[i], shops.Content[i+1])
	}

	shops.Content = kept

	if hasShop(shops, id) {
		return nil, fmt.Errorf("%w: %s; remove it from the merged mapping", ErrShopInherited, name)
	}

	if !removed {
		return nil, fmt.Errorf("%w: %s", ErrShopNotFound, name)
	}

	return out, nil
}

// hasShop reports whether shops yields id once merge keys are expanded,
// the same way Compile sees it.
func hasShop(shops *yaml.Node, id string) bool {
	for _, f := range fields(shops, diagnostic.Scope{}) {
		if NormalizeID(f.key) == id {
			return true
		}
	}

	return false
}

// editableRoot deep-copies doc and returns the copy and its root mapping,
// creating an empty mapping for an empty document.
func editableRoot(doc *yaml.Node) (*yaml.Node, *yaml.Node, error) {
	out := copyNode(doc)
	if out == nil || out.Kind == 0 {
		out = &yaml.Node{Kind: yaml.DocumentNode}
	}

	if out.Kind != yaml.DocumentNode {
		out = &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{out}}
	}

	if len(out.Content) == 0 || isNull(out.Content[0]) {
		out.Content = []*yaml.Node{mappingNode()}
	}

	root := out.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, ErrInvalidDocument
	}

	return out, root, nil
}

// shopsMapping finds the "shops" mapping under root. With create set, a
// missing or null section is created.
func shopsMapping(root *yaml.Node, create bool) (*yaml.Node, error) {
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != keyShops {
			continue
		}

		v := root.Content[i+1]

		switch {
		case v.Kind == yaml.MappingNode:
			return v, nil
		case isNull(v) && create:
			root.Content[i+1] = mappingNode()
			return root.Content[i+1], nil
		case isNull(v):
			return nil, nil
		default:
			return nil, fmt.Errorf("%w: %q is %s", ErrInvalidDocument, keyShops, kindName(v))
		}
	}

	if !create {
		return nil, nil
	}

	shops := mappingNode()
	root.Content = append(root.Content, scalarNode(keyShops), shops)

	return shops, nil
}

func copyNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}

	c := *n
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = copyNode(child)
		}
	}

	return &c
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func mappingNode(kv ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: kv}
}
