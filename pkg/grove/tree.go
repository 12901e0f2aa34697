package grove

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Predictor wraps the Predict method, which takes an observation and
returns the class predicted for it or an error if no prediction can
be made.
*/
type Predictor interface {
	Predict(Observation) (string, error)
}

/*
Node represents a node of a decision tree. A node is either a leaf,
predicting always the same Label, or a stump, that classifies
observations with its Split and delegates the prediction to the
child node for the obtained branch. Leaves have a nil Split.

Children are owned by their parent node: nodes are never shared
between trees or branches.
*/
type Node struct {
	Label    string
	Split    *Classifier
	Children map[Branch]*Node
}

type jsonNode struct {
	Label    string           `json:"label,omitempty"`
	Split    *Classifier      `json:"split,omitempty"`
	Children map[Branch]*Node `json:"children,omitempty"`
}

// NewLeaf returns a leaf node predicting the given label.
func NewLeaf(label string) *Node {
	return &Node{Label: label}
}

/*
NewStump takes a classifier and a map of branches to nodes and
returns a node that predicts with the child for the branch the
classifier assigns to each observation.
*/
func NewStump(c Classifier, children map[Branch]*Node) *Node {
	return &Node{Split: &c, Children: children}
}

// IsLeaf returns whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Split == nil
}

/*
Predict takes an observation and returns the label of the leaf it
reaches. It returns ErrMissingBranch if it reaches a stump without
a child for the branch the observation is classified into.
*/
func (n *Node) Predict(o Observation) (string, error) {
	for !n.IsLeaf() {
		b := n.Split.Classify(o)
		child, ok := n.Children[b]
		if !ok || child == nil {
			return "", errors.Wrapf(ErrMissingBranch, "predicting with %v on branch %v", *n.Split, b)
		}
		n = child
	}
	return n.Label, nil
}

// Depth returns the number of levels of stumps over the deepest leaf.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	var depth int
	for _, child := range n.Children {
		if d := child.Depth(); d > depth {
			depth = d
		}
	}
	return depth + 1
}

// Leaves returns the number of leaves under the node.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	var leaves int
	for _, child := range n.Children {
		leaves += child.Leaves()
	}
	return leaves
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("{ %s }\n", n.Label)
	}
	result := fmt.Sprintf("{ %v }\n|\n", *n.Split)
	var branches []Branch
	for _, b := range Branches {
		if _, ok := n.Children[b]; ok {
			branches = append(branches, b)
		}
	}
	for i, b := range branches {
		for j, line := range strings.Split(n.Children[b].String(), "\n") {
			if len(line) == 0 {
				continue
			}
			if j == 0 {
				result = fmt.Sprintf("%s|__%v %s\n", result, b, line)
			} else if i == len(branches)-1 {
				result = fmt.Sprintf("%s     %s\n", result, line)
			} else {
				result = fmt.Sprintf("%s|    %s\n", result, line)
			}
		}
	}
	return result
}

/*
MarshalJSON returns a slice of bytes with the Node serialized to JSON and an error.
A Node is serialized recursively with the following properties:
  * "label": the label predicted by a leaf
  * "split": the classifier of a stump, with its "feature" and "threshold"
  * "children": an object with the child node of a stump for each
  branch, keyed by the branch symbol
*/
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsLeaf() {
		return json.Marshal(&jsonNode{Label: n.Label})
	}
	return json.Marshal(&jsonNode{Split: n.Split, Children: n.Children})
}

/*
Tree represents a decision tree grown by a Trainer.
*/
type Tree struct {
	Root *Node `json:"root"`
}

// Predict takes an observation and returns the prediction of the tree's root.
func (t *Tree) Predict(o Observation) (string, error) {
	if t == nil || t.Root == nil {
		return "", ErrEmptyTree
	}
	return t.Root.Predict(o)
}

/*
Test takes a collection of observations and returns two values:
 * the rate of observations whose class the tree predicts correctly
 * the number of observations for which no prediction could be made
*/
func (t *Tree) Test(data *Observations) (float64, int) {
	return test(t, data)
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return "{ }\n"
	}
	return t.Root.String()
}

func test(p Predictor, data *Observations) (float64, int) {
	if data.Count() == 0 {
		return 0.0, 0
	}
	var result float64
	var errCount int
	for _, o := range data.Observations() {
		label, err := p.Predict(o)
		if err != nil {
			errCount++
			continue
		}
		if label == o.Class {
			result += 1.0
		}
	}
	return result / float64(data.Count()), errCount
}
