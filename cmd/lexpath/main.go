// Command lexpath finds shortest transformation paths between lowercase
// words, either for a single pair or for a whole batch file.
package main

func main() {
	Execute()
}
