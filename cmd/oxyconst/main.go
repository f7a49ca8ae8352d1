// Command oxyconst inspects the engine constant registry from the command line.
package main

func main() {
	execute()
}
