//go:build !nodesktop

package desktop

import "github.com/go-gl/glfw/v3.3/glfw"

// keyNames are the keys the games listen to, by the names view expects.
var keyNames = func() map[glfw.Key]string {
	m := map[glfw.Key]string{
		glfw.KeySpace:     "space",
		glfw.KeyEnter:     "enter",
		glfw.KeyBackspace: "backspace",
		glfw.KeyEscape:    "escape",
		glfw.KeyTab:       "tab",
	}
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		m[k] = string(rune('a' + (k - glfw.KeyA)))
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		m[k] = string(rune('0' + (k - glfw.Key0)))
	}
	return m
}()

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

// Edges returns the names of keys pressed and released since the last call.
func (in *Input) Edges(window *glfw.Window) (pressed, released []string) {
	for key, name := range keyNames {
		down := window.GetKey(key) == glfw.Press
		switch {
		case down && !in.prevKeys[key]:
			pressed = append(pressed, name)
		case !down && in.prevKeys[key]:
			released = append(released, name)
		}
		in.prevKeys[key] = down
	}
	return pressed, released
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorPos converts the cursor position to framebuffer pixels.
func CursorPos(window *glfw.Window, fbW, fbH int) (int, int) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return 0, 0
	}
	return int(cx * float64(fbW) / float64(winW)), int(cy * float64(fbH) / float64(winH))
}
