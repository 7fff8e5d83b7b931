package output

import (
	"path"
	"slices"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is the column descriptions are aligned to.
	descriptionColumn = 40
)

// FileEntry is one file of a rendered tree.
type FileEntry struct {
	// Path is slash-separated and relative to the tree root.
	Path        string
	Description string
}

type treeNode struct {
	name        string
	description string
	dir         bool
	children    []*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name, dir: dir}
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) sort() {
	slices.SortFunc(n.children, func(a, b *treeNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	for _, c := range n.children {
		c.sort()
	}
}

// RenderFileTree renders files below a root directory, directories first
// and then alphabetically, with descriptions aligned on one column.
func RenderFileTree(root string, files []FileEntry) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, dir: true}
	for _, f := range files {
		parts := strings.Split(path.Clean(f.Path), "/")
		n := top
		for i, part := range parts {
			n = n.child(part, i < len(parts)-1)
		}
		n.description = f.Description
	}
	top.sort()

	styles := GetStyles()
	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(strings.TrimSuffix(root, "/") + "/"))
	sb.WriteString("\n")
	writeChildren(&sb, styles, top, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, styles *Styles, n *treeNode, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1

		connector, next := treeEdge, treeVert
		if last {
			connector, next = treeLast, treeSpace
		}

		name := c.name
		if c.dir {
			name += "/"
		}
		line := prefix + connector + name
		sb.WriteString(line)

		if c.description != "" {
			// Box-drawing runes are one column wide but three bytes long.
			width := len([]rune(line))
			sb.WriteString(strings.Repeat(" ", max(2, descriptionColumn-width)))
			sb.WriteString(styles.Muted.Render(c.description))
		}
		sb.WriteString("\n")

		if c.dir {
			writeChildren(sb, styles, c, prefix+next)
		}
	}
}
