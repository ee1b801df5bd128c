// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package render

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ink"
)

//go:embed shaders/stroke.wgsl
var strokeShaderSource string

// sampleCount is the MSAA sample count of the stroke pipeline.
const sampleCount = 4

// viewportUniformSize is the size of the Viewport uniform (vec2 + padding).
const viewportUniformSize = 16

// fenceTimeout bounds the wait for a submitted frame.
const fenceTimeout = 5 * time.Second

// ErrNoSurface is returned by HALTarget.Begin before a size is set.
var ErrNoSurface = errors.New("render: no surface configured")

// CompileStrokeShader compiles the stroke shader to SPIR-V words.
func CompileStrokeShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(strokeShaderSource)
	if err != nil {
		return nil, fmt.Errorf("render: compile stroke shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
}

// HALOption configures a HALTarget.
type HALOption func(*halOptions)

type halOptions struct {
	bufferSize uint64
	format     gputypes.TextureFormat
	spirv      bool
	clear      gputypes.Color
}

func defaultHALOptions() halOptions {
	return halOptions{
		bufferSize: DefaultBufferSize,
		format:     gputypes.TextureFormatBGRA8Unorm,
	}
}

// WithBufferSize sets the size in bytes of each of the vertex and index
// buffers. Values of zero are ignored.
func WithBufferSize(size uint64) HALOption {
	return func(o *halOptions) {
		if size > 0 {
			o.bufferSize = size
		}
	}
}

// WithSurfaceFormat sets the color format of the surface being drawn to.
func WithSurfaceFormat(format gputypes.TextureFormat) HALOption {
	return func(o *halOptions) {
		o.format = format
	}
}

// WithSPIRV makes the target compile the stroke shader with naga and hand
// SPIR-V to the device instead of WGSL source.
func WithSPIRV() HALOption {
	return func(o *halOptions) {
		o.spirv = true
	}
}

// WithClearColor sets the color each frame is cleared to. The default is
// transparent.
func WithClearColor(c ink.RGBA) HALOption {
	return func(o *halOptions) {
		o.clear = gputypes.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
}

// HALTarget draws stroke geometry with a gogpu/wgpu HAL device.
//
// Frames render into a 4x multisampled color texture that resolves into the
// surface view set with SetSurfaceView, or into an offscreen texture owned
// by the target when no surface view is set.
//
// HALTarget is not safe for concurrent use.
type HALTarget struct {
	device hal.Device
	queue  hal.Queue
	opts   halOptions

	vertexBuf  hal.Buffer
	indexBuf   hal.Buffer
	uniformBuf hal.Buffer

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
	bindGroup     hal.BindGroup

	width, height uint32
	msaaTex       hal.Texture
	msaaView      hal.TextureView
	resolveTex    hal.Texture
	resolveView   hal.TextureView
	surfaceView   hal.TextureView
}

// NewHALTarget creates a target on a device and queue owned by the caller.
// The vertex, index and uniform buffers and the pipeline are created
// immediately.
func NewHALTarget(device hal.Device, queue hal.Queue, opts ...HALOption) (*HALTarget, error) {
	t := &HALTarget{
		device: device,
		queue:  queue,
		opts:   defaultHALOptions(),
	}
	for _, opt := range opts {
		opt(&t.opts)
	}

	if err := t.createBuffers(); err != nil {
		t.Destroy()
		return nil, err
	}
	if err := t.createPipeline(); err != nil {
		t.Destroy()
		return nil, err
	}

	ink.Logger().Debug("render: HAL target created",
		"buffer_size", t.opts.bufferSize,
		"format", t.opts.format)
	return t, nil
}

// NewHALTargetFromProvider creates a target on the device of a host
// application. The provider must expose HalDevice() and HalQueue(). The
// provider's surface format is used unless opts override it.
func NewHALTargetFromProvider(provider DeviceHandle, opts ...HALOption) (*HALTarget, error) {
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return nil, err
	}
	if format := provider.SurfaceFormat(); format != gputypes.TextureFormatUndefined {
		opts = append([]HALOption{WithSurfaceFormat(format)}, opts...)
	}
	return NewHALTarget(device, queue, opts...)
}

// VertexCapacity implements Target.
func (t *HALTarget) VertexCapacity() uint64 { return t.opts.bufferSize }

// IndexCapacity implements Target.
func (t *HALTarget) IndexCapacity() uint64 { return t.opts.bufferSize }

// Size returns the current frame size.
func (t *HALTarget) Size() (width, height uint32) { return t.width, t.height }

// Resize sets the frame size, recreating the multisampled texture and the
// offscreen resolve texture when the size changes.
func (t *HALTarget) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == t.width && height == t.height && t.msaaTex != nil {
		return nil
	}
	t.destroyTextures()
	t.width, t.height = width, height

	if err := t.createTextures(); err != nil {
		t.destroyTextures()
		t.width, t.height = 0, 0
		return err
	}

	var uniform [viewportUniformSize]byte
	binary.LittleEndian.PutUint32(uniform[0:], math.Float32bits(float32(width)))
	binary.LittleEndian.PutUint32(uniform[4:], math.Float32bits(float32(height)))
	t.queue.WriteBuffer(t.uniformBuf, 0, uniform[:])
	return nil
}

// SetSurfaceView sets the view frames resolve into, typically the current
// swapchain image, and resizes the target to match. A nil view selects the
// target's own offscreen texture.
func (t *HALTarget) SetSurfaceView(view hal.TextureView, width, height uint32) error {
	if err := t.Resize(width, height); err != nil {
		return err
	}
	t.surfaceView = view
	return nil
}

// Begin implements Target.
func (t *HALTarget) Begin() (Pass, error) {
	if t.msaaView == nil {
		return nil, ErrNoSurface
	}

	encoder, err := t.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "ink_frame_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("ink_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	resolve := t.surfaceView
	if resolve == nil {
		resolve = t.resolveView
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "ink_frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:          t.msaaView,
			ResolveTarget: resolve,
			LoadOp:        gputypes.LoadOpClear,
			StoreOp:       gputypes.StoreOpStore,
			ClearValue:    t.opts.clear,
		}},
	})
	rp.SetPipeline(t.pipeline)
	rp.SetBindGroup(0, t.bindGroup, nil)
	rp.SetVertexBuffer(0, t.vertexBuf, 0)
	rp.SetIndexBuffer(t.indexBuf, gputypes.IndexFormatUint16, 0)

	return &halPass{t: t, encoder: encoder, rp: rp}, nil
}

// Destroy releases all GPU resources owned by the target. The device and
// queue are not destroyed.
func (t *HALTarget) Destroy() {
	if t.device == nil {
		return
	}
	t.destroyTextures()
	if t.bindGroup != nil {
		t.device.DestroyBindGroup(t.bindGroup)
		t.bindGroup = nil
	}
	if t.pipeline != nil {
		t.device.DestroyRenderPipeline(t.pipeline)
		t.pipeline = nil
	}
	if t.pipeLayout != nil {
		t.device.DestroyPipelineLayout(t.pipeLayout)
		t.pipeLayout = nil
	}
	if t.uniformLayout != nil {
		t.device.DestroyBindGroupLayout(t.uniformLayout)
		t.uniformLayout = nil
	}
	if t.shader != nil {
		t.device.DestroyShaderModule(t.shader)
		t.shader = nil
	}
	for _, buf := range []*hal.Buffer{&t.vertexBuf, &t.indexBuf, &t.uniformBuf} {
		if *buf != nil {
			t.device.DestroyBuffer(*buf)
			*buf = nil
		}
	}
}

func (t *HALTarget) createBuffers() error {
	var err error
	t.vertexBuf, err = t.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "ink_vertices",
		Size:  t.opts.bufferSize,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	t.indexBuf, err = t.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "ink_indices",
		Size:  t.opts.bufferSize,
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create index buffer: %w", err)
	}
	t.uniformBuf, err = t.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "ink_viewport",
		Size:  viewportUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create viewport buffer: %w", err)
	}
	return nil
}

func (t *HALTarget) createPipeline() error {
	source := hal.ShaderSource{WGSL: strokeShaderSource}
	if t.opts.spirv {
		code, err := CompileStrokeShader()
		if err != nil {
			return err
		}
		source = hal.ShaderSource{SPIRV: code}
	}

	shader, err := t.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "ink_stroke_shader",
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("create stroke shader: %w", err)
	}
	t.shader = shader

	uniformLayout, err := t.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ink_viewport_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create viewport layout: %w", err)
	}
	t.uniformLayout = uniformLayout

	pipeLayout, err := t.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ink_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{t.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	t.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := t.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "ink_stroke_pipeline",
		Layout: t.pipeLayout,
		Vertex: hal.VertexState{
			Module:     t.shader,
			EntryPoint: "vs_main",
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     t.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    t.opts.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create stroke pipeline: %w", err)
	}
	t.pipeline = pipeline

	bindGroup, err := t.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "ink_viewport_bind",
		Layout: t.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: t.uniformBuf.NativeHandle(), Offset: 0, Size: viewportUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create viewport bind group: %w", err)
	}
	t.bindGroup = bindGroup
	return nil
}

func (t *HALTarget) createTextures() error {
	size := hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1}

	msaaTex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "ink_msaa_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        t.opts.format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA color texture: %w", err)
	}
	t.msaaTex = msaaTex

	msaaView, err := t.device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label: "ink_msaa_color_view",
	})
	if err != nil {
		return fmt.Errorf("create MSAA color view: %w", err)
	}
	t.msaaView = msaaView

	resolveTex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "ink_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        t.opts.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create resolve texture: %w", err)
	}
	t.resolveTex = resolveTex

	resolveView, err := t.device.CreateTextureView(resolveTex, &hal.TextureViewDescriptor{
		Label: "ink_resolve_view",
	})
	if err != nil {
		return fmt.Errorf("create resolve view: %w", err)
	}
	t.resolveView = resolveView
	return nil
}

func (t *HALTarget) destroyTextures() {
	if t.resolveView != nil {
		t.device.DestroyTextureView(t.resolveView)
		t.resolveView = nil
	}
	if t.resolveTex != nil {
		t.device.DestroyTexture(t.resolveTex)
		t.resolveTex = nil
	}
	if t.msaaView != nil {
		t.device.DestroyTextureView(t.msaaView)
		t.msaaView = nil
	}
	if t.msaaTex != nil {
		t.device.DestroyTexture(t.msaaTex)
		t.msaaTex = nil
	}
}

type halPass struct {
	t       *HALTarget
	encoder hal.CommandEncoder
	rp      hal.RenderPassEncoder
	ended   bool
}

func (p *halPass) WriteVertices(offset uint64, data []byte) error {
	if p.ended {
		return ErrPassEnded
	}
	if offset+uint64(len(data)) > p.t.opts.bufferSize {
		return ErrCapacityExceeded
	}
	p.t.queue.WriteBuffer(p.t.vertexBuf, offset, data)
	return nil
}

func (p *halPass) WriteIndices(offset uint64, data []byte) error {
	if p.ended {
		return ErrPassEnded
	}
	if offset+uint64(len(data)) > p.t.opts.bufferSize {
		return ErrCapacityExceeded
	}
	p.t.queue.WriteBuffer(p.t.indexBuf, offset, data)
	return nil
}

func (p *halPass) DrawIndexed(indexCount, firstIndex uint32, baseVertex int32) error {
	if p.ended {
		return ErrPassEnded
	}
	p.rp.DrawIndexed(indexCount, 1, firstIndex, baseVertex, 0)
	return nil
}

func (p *halPass) End() error {
	if p.ended {
		return ErrPassEnded
	}
	p.ended = true
	p.rp.End()

	cmdBuf, err := p.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	device := p.t.device
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := p.t.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

var _ Target = (*HALTarget)(nil)
