package graph

import (
	"sort"

	"github.com/shelfgraph/backend/pkg/model"
)

// Build synthesizes the node/link graph for a target book and its ranked
// related books. The target node comes first, related nodes follow in rank
// order. One similarity link connects the target to each related book, then
// every unordered pair of nodes sharing a category group gets a category
// link. Link weight is a constant 1 for both kinds.
func Build(target model.BookMetadata, related []RelatedBook) *model.Graph {
	nodes := make([]model.GraphNode, 0, len(related)+1)
	links := make([]model.GraphLink, 0, len(related))

	nodes = append(nodes, nodeFor(target))
	for _, r := range related {
		nodes = append(nodes, nodeFor(r.Metadata))
		links = append(links, model.GraphLink{
			Source: target.BookID,
			Target: r.ID,
			Value:  1,
		})
	}

	links = append(links, categoryLinks(nodes)...)

	return &model.Graph{Nodes: nodes, Links: links}
}

func nodeFor(m model.BookMetadata) model.GraphNode {
	return model.GraphNode{
		ID:       m.BookID,
		Title:    m.Title,
		Group:    m.Group(),
		Metadata: m.Raw,
	}
}

// categoryLinks pairs up all nodes within each group. Quadratic within a
// group, but the node count is capped at maxRelatedBooks+1. Groups emit in
// sorted order and members in node order so output is deterministic.
func categoryLinks(nodes []model.GraphNode) []model.GraphLink {
	groups := make(map[string][]int)
	for i, n := range nodes {
		if n.Group == "" {
			continue
		}
		groups[n.Group] = append(groups[n.Group], i)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var links []model.GraphLink
	for _, name := range names {
		members := groups[name]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				links = append(links, model.GraphLink{
					Source: nodes[members[i]].ID,
					Target: nodes[members[j]].ID,
					Value:  1,
				})
			}
		}
	}
	return links
}
