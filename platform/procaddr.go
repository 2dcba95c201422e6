package platform

/*
// Declared here rather than via glfw3.h so this file stays free of the
// bindings' include paths; the symbol itself comes from the GLFW library
// already linked into the binary by go-gl.
extern void *glfwGetProcAddress(const char *name);

static void *procAddressPtr(void) { return (void *)glfwGetProcAddress; }
*/
import "C"

// ProcAddress returns the address of glfwGetProcAddress itself. It is a
// property of the linked library, available before Open, and is handed
// to scripts as an integer for loader plumbing on the native side.
func (GLFW) ProcAddress() uintptr {
	return uintptr(C.procAddressPtr())
}
