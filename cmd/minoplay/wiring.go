package main

import (
	"github.com/s-shin/mino"
	"github.com/s-shin/mino/input"
)

func humanManager(params mino.GameParams) *input.Manager {
	return input.HumanPreset(params.DAS, params.ARR)
}
