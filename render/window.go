package render

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window. Creation locks the OS thread; all window
// and GPU calls must stay on it.
type Window struct {
	glfw   *glfw.Window
	Width  int
	Height int
	title  string
}

func NewWindow(width, height int, title string) *Window {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // wgpu owns the surface, not OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}

	return &Window{
		glfw:   win,
		Width:  width,
		Height: height,
		title:  title,
	}
}

func (w *Window) ShouldClose() bool {
	return w.glfw.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// FramebufferSize returns the current drawable size, which can differ
// from the requested size on high-DPI displays or after a resize.
func (w *Window) FramebufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

func (w *Window) KeyPressed(key glfw.Key) bool {
	return w.glfw.GetKey(key) == glfw.Press
}

// CursorDelta returns the mouse movement since the previous call.
func (w *Window) CursorDelta(lastX, lastY float64) (x, y, dx, dy float64) {
	x, y = w.glfw.GetCursorPos()
	return x, y, x - lastX, y - lastY
}

func (w *Window) CaptureCursor(captured bool) {
	if captured {
		w.glfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}
