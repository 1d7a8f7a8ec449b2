package knowledge

import (
	"fmt"
	"os"

	"netadvisor/internal/domain"
)

type scope struct {
	vendor   string
	category domain.Category
}

// Base holds the flattened knowledge: the parsed tree, the command registry
// and the per-vendor, per-category documents. Built once at startup and
// read-only afterwards.
type Base struct {
	tree     *Tree
	commands []domain.Command
	docs     map[scope][]domain.Document
}

// Load reads and flattens a dataset file.
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse flattens a raw dataset into a Base.
func Parse(data []byte) (*Base, error) {
	tree, err := ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	b := &Base{tree: tree, docs: make(map[scope][]domain.Document)}
	for _, v := range tree.Vendors {
		b.walk(v.Name, v.Node, v.Name)
	}
	return b, nil
}

// walk visits one node: emit setup commands, then security commands per
// level, then descend into every branch child with an extended device path.
func (b *Base) walk(vendor string, n *Node, devicePath string) {
	for _, spec := range n.Setup {
		cmd := domain.Command{
			Vendor:      vendor,
			Category:    domain.CategorySetup,
			DevicePath:  devicePath,
			Name:        spec.Name,
			Description: spec.Description,
			Template:    spec.Command,
		}
		b.commands = append(b.commands, cmd)
		b.addDocument(cmd)
	}
	for _, lvl := range n.Security {
		for _, spec := range lvl.Commands {
			cmd := domain.Command{
				Vendor:          vendor,
				Category:        domain.CategorySecurity,
				Level:           lvl.Name,
				DevicePath:      devicePath,
				Name:            spec.Name,
				Description:     spec.Description,
				Template:        spec.Command,
				Recommendations: spec.Recommendations,
			}
			b.commands = append(b.commands, cmd)
			b.addDocument(cmd)
		}
	}
	for _, c := range n.Children {
		b.walk(vendor, c.Node, devicePath+"/"+c.Name)
	}
}

func (b *Base) addDocument(cmd domain.Command) {
	key := scope{vendor: cmd.Vendor, category: cmd.Category}
	doc := domain.Document{Vendor: cmd.Vendor, Category: cmd.Category, Text: renderDocument(cmd)}
	b.docs[key] = append(b.docs[key], doc)
}

// renderDocument produces the indexable text for one command.
func renderDocument(cmd domain.Command) string {
	if cmd.Category == domain.CategorySecurity {
		recs := cmd.Recommendations
		if recs == "" {
			recs = "None"
		}
		return fmt.Sprintf(
			"Vendor: %s\nDevice: %s\nSecurity Level: %s\nName: %s\nDescription: %s\nCommand: %s\nRecommendations: %s\n",
			cmd.Vendor, cmd.DevicePath, cmd.Level, cmd.Name, cmd.Description, cmd.Template, recs)
	}
	return fmt.Sprintf(
		"Vendor: %s\nDevice: %s\nType: Setup\nName: %s\nDescription: %s\nCommand: %s\n",
		cmd.Vendor, cmd.DevicePath, cmd.Name, cmd.Description, cmd.Template)
}

// Commands returns the flat command registry in tree order.
func (b *Base) Commands() []domain.Command {
	return b.commands
}

// Documents returns the documents for one vendor and category; nil when the
// scope produced none.
func (b *Base) Documents(vendor string, category domain.Category) []domain.Document {
	return b.docs[scope{vendor: vendor, category: category}]
}

// Vendors returns the vendor names present in the dataset, in dataset order.
func (b *Base) Vendors() []string {
	out := make([]string, 0, len(b.tree.Vendors))
	for _, v := range b.tree.Vendors {
		out = append(out, v.Name)
	}
	return out
}

// HasVendor reports whether the dataset contains the named vendor.
func (b *Base) HasVendor(name string) bool {
	for _, v := range b.tree.Vendors {
		if v.Name == name {
			return true
		}
	}
	return false
}

func (b *Base) vendorNode(name string) *Node {
	for _, v := range b.tree.Vendors {
		if v.Name == name {
			return v.Node
		}
	}
	return nil
}
