package autodiff

import "math"

// Kind tags the operation a Node performs. The backward rule is selected
// by switching on Kind — a closed tagged variant, not runtime type
// inspection.
type Kind uint8

const (
	// KindConst is a fixed leaf; its value never changes.
	KindConst Kind = iota
	// KindVariable is a trainable leaf; only the optimizer updates it.
	KindVariable
	// KindAdd is the binary sum of its two operands.
	KindAdd
	// KindMul is the binary product of its two operands.
	KindMul
	// KindPow raises operand a to the power of operand b.
	KindPow
)

// Node is one vertex of the computational graph. Value is computed
// eagerly at construction; Grad is transient scratch, valid only after
// the most recent Gradients call on an ancestor.
type Node struct {
	kind  Kind
	value float64
	grad  float64
	a, b  *Node // operands; nil for leaves
}

// Const builds a fixed leaf.
func Const(v float64) *Node { return &Node{kind: KindConst, value: v} }

// Variable builds a trainable leaf.
func Variable(v float64) *Node { return &Node{kind: KindVariable, value: v} }

// Add builds a + b.
func Add(a, b *Node) *Node {
	return &Node{kind: KindAdd, value: a.value + b.value, a: a, b: b}
}

// Mul builds a · b.
func Mul(a, b *Node) *Node {
	return &Node{kind: KindMul, value: a.value * b.value, a: a, b: b}
}

// Pow builds a^b. The exponent derivative is NaN for a ≤ 0; callers keep
// bases positive (see the package doc).
func Pow(a, b *Node) *Node {
	return &Node{kind: KindPow, value: math.Pow(a.value, b.value), a: a, b: b}
}

// Neg builds −a as (−1)·a.
func Neg(a *Node) *Node { return Mul(Const(-1), a) }

// Sub builds a − b as a + (−b).
func Sub(a, b *Node) *Node { return Add(a, Neg(b)) }

// Div builds a / b as a · b⁻¹.
func Div(a, b *Node) *Node { return Mul(a, Pow(b, Const(-1))) }

// Square builds a² — the loss-term shorthand.
func Square(a *Node) *Node { return Mul(a, a) }

// Value returns the eagerly computed forward value.
func (n *Node) Value() float64 { return n.value }

// Grad returns ∂root/∂n as of the latest Gradients call.
func (n *Node) Grad() float64 { return n.grad }

// Kind returns the node's operation tag.
func (n *Node) Kind() Kind { return n.kind }

// SetValue updates a trainable leaf. Internal node values are derived,
// and constants are immutable by contract; calling SetValue on either is
// a programmer error.
func (n *Node) SetValue(v float64) {
	if n.kind != KindVariable {
		panic("autodiff: SetValue on a non-variable node")
	}
	n.value = v
}

// Gradients runs one reverse-mode pass from n: every gradient reachable
// in the subgraph is explicitly zeroed first, the root gradient is set
// to 1, and contributions are pushed to each operand via the local
// partial derivative. After the pass, m.Grad() == ∂n/∂m for every node m
// in the subgraph; shared nodes hold the sum of all their contributions.
func (n *Node) Gradients() {
	n.zeroGrads(make(map[*Node]struct{}))
	n.propagate(1)
}

// zeroGrads clears gradient scratch across the subgraph exactly once per
// node (the graph is a DAG; visited guards shared nodes).
func (n *Node) zeroGrads(visited map[*Node]struct{}) {
	if _, ok := visited[n]; ok {
		return
	}
	visited[n] = struct{}{}
	n.grad = 0
	if n.a != nil {
		n.a.zeroGrads(visited)
	}
	if n.b != nil {
		n.b.zeroGrads(visited)
	}
}

// propagate accumulates the incoming contribution and recurses with the
// chain rule. One invocation per path keeps shared-node accumulation
// exact; the graphs here are small enough that path explosion is not a
// concern (see the package doc).
func (n *Node) propagate(g float64) {
	n.grad += g
	switch n.kind {
	case KindAdd:
		n.a.propagate(g)
		n.b.propagate(g)
	case KindMul:
		n.a.propagate(g * n.b.value)
		n.b.propagate(g * n.a.value)
	case KindPow:
		// d/da a^b = b·a^(b−1);  d/db a^b = a^b·ln(a)
		n.a.propagate(g * n.b.value * math.Pow(n.a.value, n.b.value-1))
		n.b.propagate(g * n.value * math.Log(n.a.value))
	case KindConst, KindVariable:
		// leaves terminate the recursion
	}
}
