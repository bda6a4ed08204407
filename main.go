// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/lmendieta/plotproof/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
