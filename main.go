package main

import (
	"github.com/lehigh-university-libraries/findingaid/cmd"
)

func main() {
	cmd.Execute()
}
