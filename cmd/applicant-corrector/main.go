package main

import (
	"os"

	"applicant-corrector/cmd/applicant-corrector/commands"
)

func main() {
	os.Exit(commands.Execute())
}
