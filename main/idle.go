package main

// spin busy-waits forever without yielding. The process has to be killed
// from outside to stop it.
func spin() {
	for {
	}
}
