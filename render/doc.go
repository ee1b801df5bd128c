// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render packs stroke geometry into GPU buffers and draws it.
//
// # Geometry
//
// A Geometry is the GPU-ready form of one stroke: colored vertices and a
// 16-bit index list padded with zeros to the copy alignment. The padded
// length is what gets written; the original length is what gets drawn.
//
// # Batching
//
// Batcher lays out a frame's geometries back to back in the fixed-size
// vertex and index buffers of a Target and issues one indexed draw per
// geometry, using the geometry's vertex offset as the base vertex. A frame
// that does not fit fails with ErrCapacityExceeded; buffers are never grown.
//
// # Targets
//
//   - HALTarget: draws through a gogpu/wgpu HAL device with 4x MSAA
//   - RasterTarget: rasterizes on the CPU into an *image.RGBA
//   - Recorder: keeps buffer contents and draw calls in memory
//
// The HAL target receives its device from the host application. It never
// creates one:
//
//	target, err := render.NewHALTargetFromProvider(provider)
//	if err != nil {
//	    return err
//	}
//	defer target.Destroy()
//
//	target.SetSurface(view, width, height)
//	batcher := render.NewBatcher(target)
//	err = batcher.Render(engine.Geometries())
package render
