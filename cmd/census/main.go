package main

import "github.com/NVIDIA/census/pkg/cli"

func main() {
	cli.Execute()
}
