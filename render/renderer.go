package render

import (
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxshade/voxshade/shading"
)

// Config selects the shading variant and window parameters.
type Config struct {
	Width   int
	Height  int
	Title   string
	Variant shading.Variant
	// FontPath enables the debug HUD when set.
	FontPath string
	Log      Logger
}

// Renderer drives the shadow and main passes for one shading variant.
type Renderer struct {
	log     Logger
	window  *Window
	gpu     *GPU
	variant shading.Variant
	program shading.Program

	pipeline       *wgpu.RenderPipeline
	shadowPipeline *wgpu.RenderPipeline

	depthView        *wgpu.TextureView
	shadowAttachment *wgpu.TextureView
	shadowSampled    *wgpu.TextureView

	uniformBuf       *wgpu.Buffer
	shadowUniformBuf *wgpu.Buffer

	materialView    *wgpu.TextureView
	materialSampler *wgpu.Sampler
	shadowSampler   *wgpu.Sampler

	globalsBindGroup  *wgpu.BindGroup
	materialBindGroup *wgpu.BindGroup
	shadowBindGroup   *wgpu.BindGroup

	vertexBuf     *wgpu.Buffer
	indexBuf      *wgpu.Buffer
	instanceBuf   *wgpu.Buffer
	indexCount    uint32
	instanceCount uint32

	hud        *hudOverlay
	fps        FPSCounter
	start      time.Time
	lastFrame  time.Time
	lastCursor [2]float64
	captured   bool
}

// NewRenderer opens a window and builds the pipelines for the variant.
// GPU initialization failures panic; only asset problems are returned.
func NewRenderer(cfg Config) (*Renderer, error) {
	log := cfg.Log
	if log == nil {
		log = NewNopLogger()
	}

	window := NewWindow(cfg.Width, cfg.Height, cfg.Title)
	gpu := NewGPU(window)

	r := &Renderer{
		log:     log,
		window:  window,
		gpu:     gpu,
		variant: cfg.Variant,
		program: shading.NewProgram(cfg.Variant),
		start:   time.Now(),
	}

	r.pipeline = createVariantPipeline(gpu, cfg.Variant)
	r.depthView = createDepthTexture(gpu, window.Width, window.Height)
	r.uniformBuf = createUniformBuffer(gpu, cfg.Variant)

	if r.usesShadows() {
		r.shadowPipeline = createShadowPipeline(gpu)
		r.shadowUniformBuf = createShadowUniformBuffer(gpu)
		arrayView := r.program.Shadow == shading.ShadowHardwareCompareArray
		r.shadowAttachment, r.shadowSampled = createShadowTexture(gpu, 1, arrayView)
		compare := r.program.Shadow != shading.ShadowManualCompareSingle
		r.shadowSampler = createShadowSampler(gpu, compare)
	}

	if cfg.FontPath != "" {
		hud, err := newHudOverlay(gpu, cfg.FontPath)
		if err != nil {
			return nil, err
		}
		r.hud = hud
	}

	log.Infof("renderer ready: variant=%s %dx%d", cfg.Variant, window.Width, window.Height)
	return r, nil
}

func (r *Renderer) usesShadows() bool {
	return r.program.Shadow != shading.ShadowNone
}

// SetMaterial uploads the material texture array and builds the texture
// bind group.
func (r *Renderer) SetMaterial(arr *shading.TextureArray, filter shading.FilterMode) {
	mode := wgpu.FilterModeNearest
	if filter == shading.FilterLinear {
		mode = wgpu.FilterModeLinear
	}
	r.materialView = uploadTextureArray(r.gpu, arr)
	r.materialSampler = createMaterialSampler(r.gpu, mode)
	r.buildBindGroups()
}

// SetMesh uploads the shared mesh and the per-frame instance stream.
func (r *Renderer) SetMesh(vertices []shading.Vertex, indices []uint32, instances []shading.Instance) {
	r.vertexBuf = createVertexBuffer(r.gpu, vertices)
	r.indexBuf = createIndexBuffer(r.gpu, indices)
	r.instanceBuf = createInstanceBuffer(r.gpu, instances)
	r.indexCount = uint32(len(indices))
	r.instanceCount = uint32(len(instances))
	r.log.Infof("%d instances", r.instanceCount)
}

func (r *Renderer) buildBindGroups() {
	device := r.gpu.device

	layout0 := r.pipeline.GetBindGroupLayout(0)
	defer layout0.Release()
	bg0, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout0,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: r.uniformBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	r.globalsBindGroup = bg0

	layout1 := r.pipeline.GetBindGroupLayout(1)
	defer layout1.Release()
	bg1, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout1,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: r.materialView, Size: wgpu.WholeSize},
			{Binding: 1, Sampler: r.materialSampler, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	r.materialBindGroup = bg1

	if r.usesShadows() {
		layout2 := r.pipeline.GetBindGroupLayout(2)
		defer layout2.Release()
		bg2, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Layout: layout2,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, TextureView: r.shadowSampled, Size: wgpu.WholeSize},
				{Binding: 1, Sampler: r.shadowSampler, Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			panic(err)
		}
		r.shadowBindGroup = bg2
	}
}

// FrameInput is the per-frame camera input read from the window.
type FrameInput struct {
	Camera CameraInput
	Dt     float32
}

// ReadInput polls window events and translates keyboard and mouse state
// into camera input. Tab toggles mouse capture; keys 0-3 select the NDC
// debug axis on the scene variant.
func (r *Renderer) ReadInput(globals *shading.Globals) FrameInput {
	r.window.PollEvents()

	now := time.Now()
	if r.lastFrame.IsZero() {
		r.lastFrame = now
	}
	dt := float32(now.Sub(r.lastFrame).Seconds())
	r.lastFrame = now

	var in FrameInput
	in.Dt = dt
	w := r.window
	if w.KeyPressed(glfw.KeyW) {
		in.Camera.Move[2] += 1
	}
	if w.KeyPressed(glfw.KeyS) {
		in.Camera.Move[2] -= 1
	}
	if w.KeyPressed(glfw.KeyA) {
		in.Camera.Move[0] -= 1
	}
	if w.KeyPressed(glfw.KeyD) {
		in.Camera.Move[0] += 1
	}
	if w.KeyPressed(glfw.KeySpace) {
		in.Camera.Move[1] += 1
	}
	if w.KeyPressed(glfw.KeyLeftControl) {
		in.Camera.Move[1] -= 1
	}

	if w.KeyPressed(glfw.KeyTab) {
		if !r.captured {
			r.captured = true
			w.CaptureCursor(true)
			r.lastCursor[0], r.lastCursor[1] = w.glfw.GetCursorPos()
		}
	} else if w.KeyPressed(glfw.KeyEscape) && r.captured {
		r.captured = false
		w.CaptureCursor(false)
	}

	if r.captured {
		x, y, dx, dy := w.CursorDelta(r.lastCursor[0], r.lastCursor[1])
		r.lastCursor[0], r.lastCursor[1] = x, y
		in.Camera.LookX = float32(dx)
		in.Camera.LookY = float32(dy)
	}

	if r.program.DebugModes {
		for mode := 0; mode <= 3; mode++ {
			if w.KeyPressed(glfw.Key0 + glfw.Key(mode)) {
				globals.NDCDisplayMode = shading.RenderMode(mode)
			}
		}
	}
	return in
}

// resizePlan decides whether the swapchain must be reconfigured for a
// new framebuffer size. Zero extents (a minimized window) keep the old
// size.
func resizePlan(curW, curH, newW, newH int) (int, int, bool) {
	if newW == 0 || newH == 0 {
		return curW, curH, false
	}
	if newW == curW && newH == curH {
		return curW, curH, false
	}
	return newW, newH, true
}

// handleResize reconfigures the surface and recreates the depth
// attachment when the framebuffer size changed since the last frame.
func (r *Renderer) handleResize() {
	newW, newH := r.window.FramebufferSize()
	w, h, changed := resizePlan(r.window.Width, r.window.Height, newW, newH)
	if !changed {
		return
	}
	r.window.Width, r.window.Height = w, h
	r.gpu.Resize(w, h)
	r.depthView.Release()
	r.depthView = createDepthTexture(r.gpu, w, h)
	r.log.Debugf("resized to %dx%d", w, h)
}

// AspectRatio returns the current framebuffer aspect ratio. It tracks
// window resizes, so callers should read it every frame.
func (r *Renderer) AspectRatio() float32 {
	return float32(r.window.Width) / float32(r.window.Height)
}

// RenderFrame encodes and submits one frame: an optional shadow pass
// into the shadow map, the main pass, and the HUD overlay.
func (r *Renderer) RenderFrame(globals *shading.Globals, stats HudStats) error {
	r.handleResize()

	globals.TimeSeconds = float32(time.Since(r.start).Seconds())
	r.gpu.queue.WriteBuffer(r.uniformBuf, 0, globals.EncodeUniform(r.variant))

	surfaceTexture, err := r.gpu.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := r.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	if r.usesShadows() {
		r.encodeShadowPass(encoder, globals)
	}
	r.encodeMainPass(encoder, view)
	if r.hud != nil {
		now := time.Now()
		stats.FPS, stats.FrameTime = r.fps.Tick(now)
		stats.Variant = r.variant.String()
		stats.NDCMode = uint32(globals.NDCDisplayMode)
		r.hud.encode(r.gpu, encoder, view, r.window.Width, r.window.Height, stats)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer cmd.Release()

	r.gpu.queue.Submit(cmd)
	r.gpu.surface.Present()
	return nil
}

func (r *Renderer) encodeShadowPass(encoder *wgpu.CommandEncoder, globals *shading.Globals) {
	r.gpu.queue.WriteBuffer(r.shadowUniformBuf, 0, encodeMat4(globals.ShadowMapProjection))

	layout := r.shadowPipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := r.gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: r.shadowUniformBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	defer bindGroup.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "shadow pass",
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.shadowAttachment,
			DepthClearValue: 0, // reverse-Z far plane
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
		},
	})
	pass.SetPipeline(r.shadowPipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, r.vertexBuf, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, r.instanceBuf, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indexBuf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(r.indexCount, r.instanceCount, 0, 0, 0)
	pass.End()
	pass.Release()
}

func (r *Renderer) encodeMainPass(encoder *wgpu.CommandEncoder, view *wgpu.TextureView) {
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "main pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.1, G: 0.2, B: 0.4, A: 1},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthClearValue: 0, // reverse-Z far plane
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
		},
	})
	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(0, r.globalsBindGroup, nil)
	pass.SetBindGroup(1, r.materialBindGroup, nil)
	if r.shadowBindGroup != nil {
		pass.SetBindGroup(2, r.shadowBindGroup, nil)
	}
	pass.SetVertexBuffer(0, r.vertexBuf, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, r.instanceBuf, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indexBuf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(r.indexCount, r.instanceCount, 0, 0, 0)
	pass.End()
	pass.Release()
}

// ShouldClose reports whether the window was asked to close.
func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// Destroy releases GPU and window resources.
func (r *Renderer) Destroy() {
	r.gpu.Release()
	r.window.Destroy()
}

func encodeMat4(m mgl32.Mat4) []byte {
	buf := make([]byte, 0, 64)
	for _, f := range m {
		buf = appendFloat(buf, f)
	}
	return buf
}
