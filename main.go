// Package main is the entry point of the armory CLI.
package main

import (
	"github.com/huangsam/armory/cmd"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/internal/iostore"
)

func main() {
	cmd.SetStoreManager(iostore.Manager)
	err := cmd.Execute()
	iostore.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
