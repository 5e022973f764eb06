// Command sellosctl runs stamp-duty calculations offline and maintains the
// act catalogue and record exports against the service database.
package main

func main() {
	Execute()
}
