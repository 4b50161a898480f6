// uttgen is the command-line paraphrase generator.
package main

import (
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/interfaces/cli"
)

func main() {
	cli.Execute()
}
