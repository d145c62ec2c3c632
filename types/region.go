package types

import (
	"errors"
	"fmt"
	"strings"
)

// Region tags one of the three material zones of the piece.
type Region uint8

const (
	Core Region = iota
	Core2
	Reflector
)

var ErrUnknownRegion = errors.New("types: unknown region")

var RegionNameMap = map[string]Region{
	"core":      Core,
	"core2":     Core2,
	"reflector": Reflector,
}

var Regions = []Region{Core, Core2, Reflector}

func NewRegion(name string) (r Region, err error) {
	var ok bool
	if r, ok = RegionNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("%w: %q, must be one of core, core2, reflector", ErrUnknownRegion, name)
	}
	return
}

func (r Region) String() string {
	switch r {
	case Core:
		return "core"
	case Core2:
		return "core2"
	case Reflector:
		return "reflector"
	}
	return fmt.Sprintf("Region(%d)", uint8(r))
}
