package main

import (
	"runtime"

	"melodyland/cmd"
)

// GLFW must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
