// Package catalog is the list of every year of solutions.
package catalog

import (
	"github.com/aocstars/aoc"
	"github.com/aocstars/aoc/y2015"
	"github.com/aocstars/aoc/y2016"
	"github.com/aocstars/aoc/y2017"
	"github.com/aocstars/aoc/y2018"
	"github.com/aocstars/aoc/y2020"
	"github.com/aocstars/aoc/y2021"
	"github.com/aocstars/aoc/y2022"
	"github.com/aocstars/aoc/y2023"
	"github.com/aocstars/aoc/y2025"
)

var years = []func(*aoc.Builder){
	y2015.Register,
	y2016.Register,
	y2017.Register,
	y2018.Register,
	y2020.Register,
	y2021.Register,
	y2022.Register,
	y2023.Register,
	y2025.Register,
}

// Registry builds a new registry holding every star.
func Registry() (*aoc.Registry, error) {
	b := aoc.NewBuilder()
	for _, register := range years {
		register(b)
	}
	return b.Build()
}
