package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionPause
	ActionToggleProfiling
	ActionToggleOrbit
	ActionSpeedUp
	ActionSlowDown
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and tracks per-frame edges
type InputManager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyQ, ActionQuit)
	im.BindKey(glfw.KeySpace, ActionPause)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyO, ActionToggleOrbit)
	im.BindKey(glfw.KeyEqual, ActionSpeedUp)
	im.BindKey(glfw.KeyKPAdd, ActionSpeedUp)
	im.BindKey(glfw.KeyMinus, ActionSlowDown)
	im.BindKey(glfw.KeyKPSubtract, ActionSlowDown)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback routes the window's key events into this manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to clear edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}
