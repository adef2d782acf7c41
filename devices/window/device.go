// Package window implements a GLFW/OpenGL backed display and keyboard.
package window

import (
	"unicode"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// Options defines window creation properties.
type Options struct {
	Title      string
	Scale      int
	Fullscreen bool
}

// Window renders framebuffer contents into a GLFW window and forwards
// key presses to a keypad. All methods must be called from the same
// OS thread that called Open.
type Window struct {
	fb     *devices.Framebuffer
	keys   *devices.Keypad
	win    *glfw.Window
	shader uint32
	vao    uint32
	vbo    uint32
	tex    uint32
	pixels [devices.DisplayWidth * devices.DisplayHeight]byte
}

// New creates a window bound to the given framebuffer and keypad.
func New(fb *devices.Framebuffer, keys *devices.Keypad) *Window {
	return &Window{fb: fb, keys: keys}
}

// Open initializes GLFW and openGL and creates the native window.
func (w *Window) Open(opt Options) error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := devices.DisplayWidth * opt.Scale
	height := devices.DisplayHeight * opt.Scale

	if opt.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	w.win, err = glfw.CreateWindow(width, height, opt.Title, monitor, nil)
	if err != nil {
		w.Close()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	w.win.MakeContextCurrent()
	w.win.SetKeyCallback(w.keyCallback)

	glfw.SwapInterval(1)

	if err = gl.Init(); err != nil {
		w.Close()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)

	if err = w.initScene(); err != nil {
		w.Close()
		return err
	}

	return nil
}

// Close destroys the window and releases GLFW and openGL resources.
func (w *Window) Close() {
	if w.win != nil {
		gl.DeleteTextures(1, &w.tex)
		gl.DeleteBuffers(1, &w.vbo)
		gl.DeleteVertexArrays(1, &w.vao)
		gl.DeleteProgram(w.shader)

		w.win.Destroy()
		w.win = nil
	}

	glfw.Terminate()
}

// ShouldClose returns true when the user asked for the window to close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Render draws the current framebuffer contents and swaps buffers.
func (w *Window) Render() {
	if w.fb.Snapshot(w.pixels[:]) {
		uploadTexture(w.tex, gl.RED, devices.DisplayWidth, devices.DisplayHeight, gl.RED, gl.UNSIGNED_BYTE, w.pixels[:])
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.shader)
	gl.BindVertexArray(w.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	w.win.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	if key == glfw.KeyEscape {
		w.win.SetShouldClose(true)
		return
	}

	if key < 0 || key > 255 {
		return
	}

	if k, ok := arch.KeyFromChar(unicode.ToLower(rune(key))); ok {
		w.keys.Press(k)
	}
}

// initScene compiles the shader and sets up the screen quad and texture.
func (w *Window) initScene() error {
	var err error

	w.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(w.shader)

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(w.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(w.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	w.tex = makeTexture()
	uploadTexture(w.tex, gl.RED, devices.DisplayWidth, devices.DisplayHeight, gl.RED, gl.UNSIGNED_BYTE, w.pixels[:])
	return nil
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}
