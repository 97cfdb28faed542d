// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package math3 provides the small set of 3D math primitives lattice needs:
// float32 3-vectors and flattened column-major 4x4 matrices with the
// right-handed, [0, 1]-depth clip conventions used across the GoGPU stack.
//
// It is deliberately minimal. If you need a full linear algebra package,
// use a dedicated one; math3 exists so that the camera planner and the
// projector agree bit-for-bit on matrix conventions.
package math3
