package block

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for a block whose type is not recognized.
var ErrUnknownKind = errors.New("unknown block type")

// Tree is a decoded content tree.
type Tree struct {
	Title  string
	FPS    int
	Blocks []Block
	// Skipped lists the locations of unrecognized blocks dropped in lenient mode.
	Skipped []string
}

// DecodeOptions controls tree decoding.
type DecodeOptions struct {
	// Lenient drops blocks with an unknown type instead of failing.
	Lenient bool
}

type document struct {
	Title  string    `yaml:"title"`
	FPS    int       `yaml:"fps"`
	Blocks yaml.Node `yaml:"blocks"`
}

type layoutNode struct {
	Layout `yaml:",inline"`
	Panes  []struct {
		Blocks yaml.Node `yaml:"blocks"`
	} `yaml:"panes"`
}

// LoadFile reads and decodes a tree from a YAML or JSON file.
func LoadFile(path string, opts DecodeOptions) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	tree, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return tree, nil
}

// Parse decodes a tree. The document is either a mapping with a "blocks"
// sequence or a bare sequence of blocks. JSON input is accepted as YAML.
func Parse(data []byte, opts DecodeOptions) (*Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("tree document is empty")
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	d := decoder{lenient: opts.Lenient}
	tree := &Tree{}
	switch node.Kind {
	case yaml.SequenceNode:
		blocks, err := d.sequence(node, "blocks")
		if err != nil {
			return nil, err
		}
		tree.Blocks = blocks
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode tree: %w", err)
		}
		blocks, err := d.sequence(&doc.Blocks, "blocks")
		if err != nil {
			return nil, err
		}
		tree.Title = strings.TrimSpace(doc.Title)
		tree.FPS = doc.FPS
		tree.Blocks = blocks
	default:
		return nil, fmt.Errorf("line %d: tree must be a mapping or a sequence", node.Line)
	}
	tree.Skipped = d.skipped
	return tree, nil
}

type decoder struct {
	lenient bool
	skipped []string
}

func (d *decoder) sequence(node *yaml.Node, path string) ([]Block, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s (line %d): expected a sequence of blocks", path, node.Line)
	}
	blocks := make([]Block, 0, len(node.Content))
	for i, item := range node.Content {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		b, err := d.block(item, itemPath)
		if err != nil {
			if d.lenient && errors.Is(err, ErrUnknownKind) {
				d.skipped = append(d.skipped, itemPath)
				continue
			}
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (d *decoder) block(node *yaml.Node, path string) (Block, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s (line %d): block must be a mapping", path, node.Line)
	}
	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	kind := Kind(strings.ToLower(strings.TrimSpace(head.Type)))
	switch kind {
	case KindCode:
		return decodeAs[Code](node, path)
	case KindImage:
		return decodeAs[Image](node, path)
	case KindGif:
		return decodeAs[Gif](node, path)
	case KindVideo:
		return decodeAs[Video](node, path)
	case KindConsole:
		return decodeAs[Console](node, path)
	case KindLayout:
		var raw layoutNode
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		layout := raw.Layout
		layout.Panes = make([]Pane, 0, len(raw.Panes))
		for i := range raw.Panes {
			blocks, err := d.sequence(&raw.Panes[i].Blocks, fmt.Sprintf("%s.panes[%d].blocks", path, i))
			if err != nil {
				return nil, err
			}
			layout.Panes = append(layout.Panes, Pane{Blocks: blocks})
		}
		return layout, nil
	default:
		return nil, fmt.Errorf("%s (line %d): %w %q", path, node.Line, ErrUnknownKind, head.Type)
	}
}

func decodeAs[T Block](node *yaml.Node, path string) (Block, error) {
	var value T
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return value, nil
}
