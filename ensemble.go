package grib

import (
	"golang.org/x/exp/slices"

	"github.com/mpiannucci/gribberish-sub001/product"
)

// EnsembleMembers returns the distinct perturbation numbers present across
// messages, sorted ascending. Messages using a non-ensemble product
// template are ignored. This is useful for discovering the member count and
// numbering scheme of an ensemble file before iterating over it.
func EnsembleMembers(messages []*Message) []int {
	var members []int
	for _, m := range messages {
		if m == nil || m.Section4 == nil {
			continue
		}
		switch p := m.Section4.Product.(type) {
		case *product.Template41:
			members = append(members, int(p.PerturbationNumber))
		case *product.Template411:
			members = append(members, int(p.PerturbationNumber))
		}
	}

	slices.Sort(members)
	return slices.Compact(members)
}

// ControlMember returns the first message, in slice order, carrying the
// unperturbed control run, or nil if none is present.
func ControlMember(messages []*Message) *Message {
	for _, m := range messages {
		if m == nil || m.Section4 == nil {
			continue
		}
		switch p := m.Section4.Product.(type) {
		case *product.Template41:
			if p.IsControl() {
				return m
			}
		case *product.Template411:
			if p.IsControl() {
				return m
			}
		}
	}
	return nil
}
