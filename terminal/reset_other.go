//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package terminal

func resetTerminalMode() {}
