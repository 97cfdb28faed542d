// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggview renders lattice scenes with the gogpu/gg software
// rasterizer. It implements the lattice.Renderer contract on the CPU:
// segments become stroked lines, intersection dots become filled circles,
// and digit labels are drawn as small markers at their projected
// positions. Use it for PNG output, tests, and headless tools; windowed
// or GPU-surface rendering belongs to the application layer.
package ggview
