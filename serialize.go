// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package covertree

import "fmt"

// Frame is one node's worth of serialized state, emitted in depth-first
// pre-order. HasChildren tells the decoder whether to push a new parent
// frame onto its stack; a subsequent sentinel (via EncodeEnd / the end
// return of Decode) pops it back off.
type Frame[R any] struct {
	ID          int
	Level       int
	ParentDist  float64
	Data        R
	HasChildren bool
}

// Encoder receives a DFS pre-order stream of frames, including explicit
// end-of-children sentinels. Concrete encodings (codec/msgpack,
// codec/cbor) live outside this package.
type Encoder[R any] interface {
	Encode(Frame[R]) error
	EncodeEnd() error
}

// Decoder produces the stream an Encoder wrote. Decode returns end ==
// true for an end-of-children sentinel, in which case frame is the zero
// value and should be ignored.
type Decoder[R any] interface {
	Decode() (frame Frame[R], end bool, err error)
}

// Serialize writes the tree to enc in depth-first pre-order: every node,
// then its children, then (if it had children) one EncodeEnd sentinel
// closing that child list, mirroring the nesting a Decoder must walk
// back out of.
func (t *Tree[R]) Serialize(enc Encoder[R]) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.root == nil {
		// An empty tree still writes one sentinel, so Deserialize can
		// distinguish "stream holds zero nodes" from "stream truncated
		// before any frame arrived".
		return enc.EncodeEnd()
	}
	return serializeRec(enc, t.root)
}

func serializeRec[R any](enc Encoder[R], n *node[R]) error {
	hasChildren := len(n.children) > 0
	if err := enc.Encode(Frame[R]{
		ID:          n.id,
		Level:       n.level,
		ParentDist:  n.parentDist,
		Data:        n.data,
		HasChildren: hasChildren,
	}); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := serializeRec(enc, c); err != nil {
			return err
		}
	}
	if hasChildren {
		return enc.EncodeEnd()
	}
	return nil
}

// Deserialize replaces the tree's contents with the stream read from
// dec. It builds the new tree in a scratch value first and only swaps it
// in once decoding succeeds in full, so a failed Deserialize leaves the
// original tree untouched (strong exception safety).
func (t *Tree[R]) Deserialize(dec Decoder[R]) error {
	root, size, nextID, idx, err := deserializeTree[R](dec)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = root
	t.size = size
	t.nextID = nextID
	t.idx = idx
	return nil
}

func deserializeTree[R any](dec Decoder[R]) (root *node[R], size, nextID int, idx map[int]*node[R], err error) {
	idx = make(map[int]*node[R])

	frame, end, err := dec.Decode()
	if err != nil {
		return nil, 0, 0, nil, fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}
	if end {
		return nil, 0, 0, idx, nil
	}

	root = &node[R]{
		data:       frame.Data,
		level:      frame.Level,
		parentDist: frame.ParentDist,
		id:         frame.ID,
	}
	idx[root.id] = root
	size = 1
	if frame.ID >= nextID {
		nextID = frame.ID + 1
	}

	if frame.HasChildren {
		if err := deserializeChildren(dec, root, idx, &size, &nextID); err != nil {
			return nil, 0, 0, nil, err
		}
	}
	return root, size, nextID, idx, nil
}

// deserializeChildren reads frames until the sentinel that closes
// parent's child list, attaching each decoded node (and, recursively,
// its own children) to parent.
func deserializeChildren[R any](dec Decoder[R], parent *node[R], idx map[int]*node[R], size, nextID *int) error {
	for {
		frame, end, err := dec.Decode()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptStream, err)
		}
		if end {
			return nil
		}

		child := &node[R]{
			data:       frame.Data,
			level:      frame.Level,
			parentDist: frame.ParentDist,
			id:         frame.ID,
			parent:     parent,
		}
		idx[child.id] = child
		parent.children = append(parent.children, child)
		*size++
		if frame.ID >= *nextID {
			*nextID = frame.ID + 1
		}

		if frame.HasChildren {
			if err := deserializeChildren(dec, child, idx, size, nextID); err != nil {
				return err
			}
		}
	}
}
