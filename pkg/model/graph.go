package model

import "encoding/json"

// GraphNode is one book in the rendered graph. Nodes are keyed by book id;
// the title is a display label only, so colliding titles never merge nodes.
type GraphNode struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Group    string          `json:"group"`
	Metadata json.RawMessage `json:"metadata"`
}

// GraphLink is an edge between two nodes, referenced by book id. Similarity
// links connect the target book to each related book; category links connect
// every pair of nodes sharing a group.
type GraphLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// Graph is the node/link structure returned to the client.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}
