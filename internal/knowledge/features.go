package knowledge

import (
	"fmt"
	"strings"

	"netadvisor/internal/domain"
)

const featureListFooter = "\nWould you like to configure another feature? All commands can be exported if needed."

// FeatureList renders a grouped, human-readable listing of the given vendors'
// features in one category. levelFilter, when non-empty, keeps only security
// levels whose name matches it case-insensitively.
func (b *Base) FeatureList(vendors []string, category domain.Category, levelFilter string) string {
	var sb strings.Builder
	for _, vendor := range vendors {
		node := b.vendorNode(vendor)
		if node == nil {
			continue
		}
		fmt.Fprintf(&sb, "\n✨ %s Features for %s:\n", capitalize(string(category)), vendor)
		b.listFeatures(&sb, node, category, levelFilter, vendor)
	}
	sb.WriteString(featureListFooter)
	return sb.String()
}

// listFeatures mirrors the flattening walk, but a node that carries the
// target category is a leaf for listing purposes: it renders its groups and
// is not descended further.
func (b *Base) listFeatures(sb *strings.Builder, n *Node, category domain.Category, levelFilter, devicePath string) {
	groups := featureGroups(n, category)
	if groups == nil {
		for _, c := range n.Children {
			b.listFeatures(sb, c.Node, category, levelFilter, devicePath+"/"+c.Name)
		}
		return
	}
	label := lastSegment(devicePath)
	for _, g := range groups {
		if levelFilter != "" && !strings.EqualFold(g.Name, levelFilter) {
			continue
		}
		if g.Name != "" {
			fmt.Fprintf(sb, "\n🔐 %s - %s Level:\n", label, capitalize(g.Name))
		} else {
			fmt.Fprintf(sb, "\n🔐 %s :\n", label)
		}
		for _, cmd := range g.Commands {
			fmt.Fprintf(sb, "- %s: %s\n", cmd.Name, cmd.Description)
		}
	}
}

// featureGroups returns the listable groups of one node for a category, or
// nil when the node does not carry that category. Setup commands form a
// single unnamed group.
func featureGroups(n *Node, category domain.Category) []Level {
	if category == domain.CategorySecurity {
		return n.Security
	}
	if n.Setup == nil {
		return nil
	}
	return []Level{{Commands: n.Setup}}
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
