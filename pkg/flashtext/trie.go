package flashtext

// terminal marks the end of a registered keyword's token path. It holds
// the keyword exactly as the caller registered it and the text substituted
// for it during replacement.
type terminal struct {
	keyword     string
	replacement string
}

// node is a trie node. Children are keyed by the KeyFunc-derived form of
// one token; a node owns its children exclusively, so the graph is a
// rooted tree. term is nil unless a keyword path ends here.
type node struct {
	children map[string]*node
	term     *terminal
}

func newNode() *node {
	return &node{}
}

// child returns the child for key, or nil.
func (n *node) child(key string) *node {
	return n.children[key]
}

// ensureChild returns the child for key, creating it if absent.
func (n *node) ensureChild(key string) *node {
	c, ok := n.children[key]
	if !ok {
		if n.children == nil {
			n.children = make(map[string]*node, 1)
		}
		c = newNode()
		n.children[key] = c
	}
	return c
}

// add walks keys from n, creating nodes as needed, and installs a
// terminal at the path end. A terminal already present is overwritten:
// last write wins, for identical keywords as well as for distinct
// keywords whose tokens derive the same key sequence (e.g. "Foo" and
// "foo" under FoldKey). Reports whether the terminal is new.
func (n *node) add(keys []string, keyword, replacement string) bool {
	cur := n
	for _, k := range keys {
		cur = cur.ensureChild(k)
	}
	created := cur.term == nil
	cur.term = &terminal{keyword: keyword, replacement: replacement}
	return created
}
