package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// ValidKey reports whether code is a key identifier GLFW defines. The
// printable block is sparse, so its gaps are spelled out. KeyUnknown
// (-1) is rejected: the native key-state query does not accept it.
func (GLFW) ValidKey(code int64) bool {
	switch {
	case code == int64(glfw.KeySpace), code == int64(glfw.KeyApostrophe):
		return true
	case code >= int64(glfw.KeyComma) && code <= int64(glfw.Key9):
		return true
	case code == int64(glfw.KeySemicolon), code == int64(glfw.KeyEqual):
		return true
	case code >= int64(glfw.KeyA) && code <= int64(glfw.KeyRightBracket):
		return true
	case code == int64(glfw.KeyGraveAccent), code == int64(glfw.KeyWorld1), code == int64(glfw.KeyWorld2):
		return true
	case code >= int64(glfw.KeyEscape) && code <= int64(glfw.KeyEnd):
		return true
	case code >= int64(glfw.KeyCapsLock) && code <= int64(glfw.KeyPause):
		return true
	case code >= int64(glfw.KeyF1) && code <= int64(glfw.KeyF25):
		return true
	case code >= int64(glfw.KeyKP0) && code <= int64(glfw.KeyKPEqual):
		return true
	case code >= int64(glfw.KeyLeftShift) && code <= int64(glfw.KeyMenu):
		return true
	}
	return false
}
