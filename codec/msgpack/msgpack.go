// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package msgpack implements covertree.Encoder and covertree.Decoder over
// the MessagePack wire format, via vmihailenco/msgpack/v5.
package msgpack

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/SignalEmpoweringTechnology/covertree"
)

// envelope is the wire record: either a node frame or an end-of-children
// sentinel.
type envelope[R any] struct {
	End   bool
	Frame covertree.Frame[R]
}

// Encoder writes a [covertree.Tree] to an underlying io.Writer as a
// stream of MessagePack-encoded envelopes.
type Encoder[R any] struct {
	enc *msgpack.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder[R any](w io.Writer) *Encoder[R] {
	return &Encoder[R]{enc: msgpack.NewEncoder(w)}
}

// Encode implements covertree.Encoder.
func (e *Encoder[R]) Encode(frame covertree.Frame[R]) error {
	return e.enc.Encode(envelope[R]{Frame: frame})
}

// EncodeEnd implements covertree.Encoder.
func (e *Encoder[R]) EncodeEnd() error {
	return e.enc.Encode(envelope[R]{End: true})
}

// Decoder reads a stream written by Encoder.
type Decoder[R any] struct {
	dec *msgpack.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder[R any](r io.Reader) *Decoder[R] {
	return &Decoder[R]{dec: msgpack.NewDecoder(r)}
}

// Decode implements covertree.Decoder.
func (d *Decoder[R]) Decode() (frame covertree.Frame[R], end bool, err error) {
	var env envelope[R]
	if err := d.dec.Decode(&env); err != nil {
		return frame, false, err
	}
	return env.Frame, env.End, nil
}
